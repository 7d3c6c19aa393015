package model

type Category struct {
	CatalogBase
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	SEOFields

	SubCategories []SubCategory `gorm:"constraint:OnDelete:CASCADE" json:"sub_categories,omitempty"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) GetSlug() string  { return c.Slug }
func (c *Category) SetSlug(s string) { c.Slug = s }

func (c *Category) ApplyPatch(p CatalogPatch) {
	c.applyBase(p)
	c.applySEO(p)
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
}
