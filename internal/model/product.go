package model

import "github.com/google/uuid"

type Product struct {
	CatalogBase
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	SEOFields

	CategoryID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"category_id"`
	Category      *Category    `gorm:"constraint:OnDelete:CASCADE" json:"category,omitempty"`
	SubCategoryID *uuid.UUID   `gorm:"type:uuid;index" json:"sub_category_id,omitempty"`
	SubCategory   *SubCategory `gorm:"constraint:OnDelete:SET NULL" json:"sub_category,omitempty"`
	BrandID       *uuid.UUID   `gorm:"type:uuid;index" json:"brand_id,omitempty"`
	Brand         *Brand       `gorm:"constraint:OnDelete:SET NULL" json:"brand,omitempty"`
	SupplierID    *uuid.UUID   `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier      *Supplier    `gorm:"constraint:OnDelete:SET NULL" json:"supplier,omitempty"`

	ShortDescription string  `gorm:"type:text" json:"short_description"`
	Specifications   string  `gorm:"type:text" json:"specifications"`
	Price            float64 `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	SalePrice        float64 `gorm:"type:decimal(10,2);default:0" json:"sale_price"`
	StockQuantity    int     `gorm:"not null;default:0" json:"stock_quantity"`
	AllowBackorders  bool    `gorm:"not null;default:false" json:"allow_backorders"`
	SKU              string  `gorm:"size:100" json:"sku"`
	Thumbnail        string  `gorm:"size:255" json:"thumbnail"`
	IsFeatured       bool    `gorm:"not null;default:false" json:"is_featured"`
	IsNew            bool    `gorm:"not null;default:false" json:"is_new"`
	ViewCount        int     `gorm:"not null;default:0" json:"view_count"`
	SoldCount        int     `gorm:"not null;default:0" json:"sold_count"`
}

func (Product) TableName() string { return "products" }

func (p *Product) GetSlug() string  { return p.Slug }
func (p *Product) SetSlug(s string) { p.Slug = s }

func (p *Product) ApplyPatch(patch CatalogPatch) {
	p.applyBase(patch)
	p.applySEO(patch)
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.SubCategoryID != nil {
		p.SubCategoryID = patch.SubCategoryID
	}
	if patch.BrandID != nil {
		p.BrandID = patch.BrandID
	}
	if patch.SupplierID != nil {
		p.SupplierID = patch.SupplierID
	}
	if patch.ShortDescription != nil {
		p.ShortDescription = *patch.ShortDescription
	}
	if patch.Specifications != nil {
		p.Specifications = *patch.Specifications
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.SalePrice != nil {
		p.SalePrice = *patch.SalePrice
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	if patch.AllowBackorders != nil {
		p.AllowBackorders = *patch.AllowBackorders
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Thumbnail != nil {
		p.Thumbnail = *patch.Thumbnail
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.IsNew != nil {
		p.IsNew = *patch.IsNew
	}
}
