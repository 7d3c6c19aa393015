package model

import "github.com/google/uuid"

type Variant struct {
	CatalogBase

	AttributeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"attribute_id"`
	Attribute   *Attribute `gorm:"constraint:OnDelete:CASCADE" json:"attribute,omitempty"`
}

func (Variant) TableName() string { return "variants" }

func (v *Variant) ApplyPatch(p CatalogPatch) {
	v.applyBase(p)
	if p.AttributeID != nil {
		v.AttributeID = *p.AttributeID
	}
}
