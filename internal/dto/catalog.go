package dto

import (
	"github.com/google/uuid"

	"github.com/lokavera/catalog-admin/internal/model"
)

// CreateCatalogRequest covers every catalog entity; fields an entity does
// not declare are ignored by its ApplyPatch allow-list.
type CreateCatalogRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Image       *string `json:"image"`
	Position    *int    `json:"position" binding:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`

	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	MetaKey         *string `json:"meta_key"`
	MetaContent     *string `json:"meta_content"`

	CategoryID    *uuid.UUID `json:"category_id"`
	SubCategoryID *uuid.UUID `json:"sub_category_id"`
	BrandID       *uuid.UUID `json:"brand_id"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
	AttributeID   *uuid.UUID `json:"attribute_id"`

	Address *string `json:"address"`
	Phone   *string `json:"phone"`

	ShortDescription *string  `json:"short_description"`
	Specifications   *string  `json:"specifications"`
	Price            *float64 `json:"price" binding:"omitempty,min=0"`
	SalePrice        *float64 `json:"sale_price" binding:"omitempty,min=0"`
	StockQuantity    *int     `json:"stock_quantity" binding:"omitempty,min=0"`
	AllowBackorders  *bool    `json:"allow_backorders"`
	SKU              *string  `json:"sku" binding:"omitempty,max=100"`
	Thumbnail        *string  `json:"thumbnail"`
	IsFeatured       *bool    `json:"is_featured"`
	IsNew            *bool    `json:"is_new"`
}

func (r CreateCatalogRequest) Patch() model.CatalogPatch {
	name := r.Name
	return model.CatalogPatch{
		Name:        &name,
		Slug:        r.Slug,
		Description: r.Description,
		Icon:        r.Icon,
		Color:       r.Color,
		Image:       r.Image,
		Position:    r.Position,
		IsActive:    r.IsActive,

		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		MetaKey:         r.MetaKey,
		MetaContent:     r.MetaContent,

		CategoryID:    r.CategoryID,
		SubCategoryID: r.SubCategoryID,
		BrandID:       r.BrandID,
		SupplierID:    r.SupplierID,
		AttributeID:   r.AttributeID,

		Address: r.Address,
		Phone:   r.Phone,

		ShortDescription: r.ShortDescription,
		Specifications:   r.Specifications,
		Price:            r.Price,
		SalePrice:        r.SalePrice,
		StockQuantity:    r.StockQuantity,
		AllowBackorders:  r.AllowBackorders,
		SKU:              r.SKU,
		Thumbnail:        r.Thumbnail,
		IsFeatured:       r.IsFeatured,
		IsNew:            r.IsNew,
	}
}

// UpdateCatalogRequest is a partial update; absent fields stay untouched.
type UpdateCatalogRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Image       *string `json:"image"`
	Position    *int    `json:"position" binding:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`

	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	MetaKey         *string `json:"meta_key"`
	MetaContent     *string `json:"meta_content"`

	CategoryID    *uuid.UUID `json:"category_id"`
	SubCategoryID *uuid.UUID `json:"sub_category_id"`
	BrandID       *uuid.UUID `json:"brand_id"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
	AttributeID   *uuid.UUID `json:"attribute_id"`

	Address *string `json:"address"`
	Phone   *string `json:"phone"`

	ShortDescription *string  `json:"short_description"`
	Specifications   *string  `json:"specifications"`
	Price            *float64 `json:"price" binding:"omitempty,min=0"`
	SalePrice        *float64 `json:"sale_price" binding:"omitempty,min=0"`
	StockQuantity    *int     `json:"stock_quantity" binding:"omitempty,min=0"`
	AllowBackorders  *bool    `json:"allow_backorders"`
	SKU              *string  `json:"sku" binding:"omitempty,max=100"`
	Thumbnail        *string  `json:"thumbnail"`
	IsFeatured       *bool    `json:"is_featured"`
	IsNew            *bool    `json:"is_new"`
}

func (r UpdateCatalogRequest) Patch() model.CatalogPatch {
	return model.CatalogPatch{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Icon:        r.Icon,
		Color:       r.Color,
		Image:       r.Image,
		Position:    r.Position,
		IsActive:    r.IsActive,

		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		MetaKey:         r.MetaKey,
		MetaContent:     r.MetaContent,

		CategoryID:    r.CategoryID,
		SubCategoryID: r.SubCategoryID,
		BrandID:       r.BrandID,
		SupplierID:    r.SupplierID,
		AttributeID:   r.AttributeID,

		Address: r.Address,
		Phone:   r.Phone,

		ShortDescription: r.ShortDescription,
		Specifications:   r.Specifications,
		Price:            r.Price,
		SalePrice:        r.SalePrice,
		StockQuantity:    r.StockQuantity,
		AllowBackorders:  r.AllowBackorders,
		SKU:              r.SKU,
		Thumbnail:        r.Thumbnail,
		IsFeatured:       r.IsFeatured,
		IsNew:            r.IsNew,
	}
}

// DeleteCatalogQuery carries the force flag for permanent removal.
type DeleteCatalogQuery struct {
	Force bool `form:"force"`
}
