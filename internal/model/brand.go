package model

type Brand struct {
	CatalogBase
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
}

func (Brand) TableName() string { return "brands" }

func (b *Brand) GetSlug() string  { return b.Slug }
func (b *Brand) SetSlug(s string) { b.Slug = s }

func (b *Brand) ApplyPatch(p CatalogPatch) {
	b.applyBase(p)
	if p.Slug != nil {
		b.Slug = *p.Slug
	}
}
