package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogBase carries the columns shared by every catalog entity. Concrete
// entities embed it and add their own relations and extras.
type CatalogBase struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:255" json:"icon"`
	Color       string    `gorm:"size:50" json:"color"`
	Image       string    `gorm:"size:255" json:"image"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	// No column default: a default tag makes GORM skip the zero value on
	// insert, which would silently turn an explicit false into true. The
	// service layer owns the true-by-default rule.
	IsActive  bool           `gorm:"not null" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (b *CatalogBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID, err = uuid.NewV7()
	}
	return
}

func (b *CatalogBase) GetID() uuid.UUID  { return b.ID }
func (b *CatalogBase) GetName() string   { return b.Name }
func (b *CatalogBase) GetIsActive() bool { return b.IsActive }
func (b *CatalogBase) SetIsActive(v bool) {
	b.IsActive = v
}

// GetSlug and SetSlug are no-ops here; slug-bearing entities override them.
func (b *CatalogBase) GetSlug() string { return "" }
func (b *CatalogBase) SetSlug(string)  {}

// SEOFields is embedded by entities exposing SEO metadata.
type SEOFields struct {
	MetaTitle       string `gorm:"size:255" json:"meta_title"`
	MetaDescription string `gorm:"type:text" json:"meta_description"`
	MetaKey         string `gorm:"size:255" json:"meta_key"`
	MetaContent     string `gorm:"type:text" json:"meta_content"`
}

// CatalogEntity is the behavior the generic repository and service need from
// any catalog row.
type CatalogEntity interface {
	GetID() uuid.UUID
	GetName() string
	GetSlug() string
	SetSlug(string)
	GetIsActive() bool
	SetIsActive(bool)
	ApplyPatch(CatalogPatch)
}

// CatalogPatch is an explicit partial update: nil fields are left untouched.
// Each entity's ApplyPatch applies only the fields it actually owns, so a
// patch can never persist a column the entity does not declare.
type CatalogPatch struct {
	Name        *string
	Slug        *string
	Description *string
	Icon        *string
	Color       *string
	Image       *string
	Position    *int
	IsActive    *bool

	MetaTitle       *string
	MetaDescription *string
	MetaKey         *string
	MetaContent     *string

	// Relations
	CategoryID    *uuid.UUID
	SubCategoryID *uuid.UUID
	BrandID       *uuid.UUID
	SupplierID    *uuid.UUID
	AttributeID   *uuid.UUID

	// Supplier extras
	Address *string
	Phone   *string

	// Product extras
	ShortDescription *string
	Specifications   *string
	Price            *float64
	SalePrice        *float64
	StockQuantity    *int
	AllowBackorders  *bool
	SKU              *string
	Thumbnail        *string
	IsFeatured       *bool
	IsNew            *bool
}

func (b *CatalogBase) applyBase(p CatalogPatch) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Icon != nil {
		b.Icon = *p.Icon
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Position != nil {
		b.Position = *p.Position
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}

func (s *SEOFields) applySEO(p CatalogPatch) {
	if p.MetaTitle != nil {
		s.MetaTitle = *p.MetaTitle
	}
	if p.MetaDescription != nil {
		s.MetaDescription = *p.MetaDescription
	}
	if p.MetaKey != nil {
		s.MetaKey = *p.MetaKey
	}
	if p.MetaContent != nil {
		s.MetaContent = *p.MetaContent
	}
}
