package model

import "github.com/google/uuid"

type SubCategory struct {
	CatalogBase
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	SEOFields

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Category   *Category `gorm:"constraint:OnDelete:CASCADE" json:"category,omitempty"`
}

func (SubCategory) TableName() string { return "sub_categories" }

func (s *SubCategory) GetSlug() string   { return s.Slug }
func (s *SubCategory) SetSlug(sl string) { s.Slug = sl }

func (s *SubCategory) ApplyPatch(p CatalogPatch) {
	s.applyBase(p)
	s.applySEO(p)
	if p.Slug != nil {
		s.Slug = *p.Slug
	}
	if p.CategoryID != nil {
		s.CategoryID = *p.CategoryID
	}
}
