package model

type Attribute struct {
	CatalogBase

	Variants []Variant `gorm:"constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

func (Attribute) TableName() string { return "attributes" }

func (a *Attribute) ApplyPatch(p CatalogPatch) {
	a.applyBase(p)
}
