package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/catalog"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID                        uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Slug                      string            `json:"slug" gorm:"not null;uniqueIndex"`
	Name                      string            `json:"name" gorm:"not null;index"`
	Category                  string            `json:"category" gorm:"index"`
	SubCategory               string            `json:"sub_category" gorm:"index"`
	ChildCategory             string            `json:"child_category" gorm:"index"`
	Material                  string            `json:"material"`
	HeadType                  string            `json:"head_type"`
	DriveType                 string            `json:"drive_type"`
	ThreadType                string            `json:"thread_type"`
	ShortDescription          string            `json:"short_description" gorm:"type:text"`
	LongDescription           string            `json:"long_description" gorm:"type:text"`
	Images                    StringList        `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	TechnicalDrawing          *string           `json:"technical_drawing"`
	Specifications            SpecificationList `json:"specifications" gorm:"type:jsonb;not null;default:'[]'"`
	DimensionalSpecifications DimensionList     `json:"dimensional_specifications" gorm:"type:jsonb;not null;default:'[]'"`
	Applications              datatypes.JSON    `json:"applications" gorm:"type:jsonb"` // legacy rows hold a plain string array
	FinishImages              FinishImageMap    `json:"finish_images" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt                 time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt                 time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	Variants []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
}

// ProductVariant is one diameter/length/finish combination. It has no
// identity of its own; the whole set is replaced on every save.
type ProductVariant struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Diameter  string    `json:"diameter"`
	Length    string    `json:"length"`
	Finish    string    `json:"finish"`
	Stock     int       `json:"stock" gorm:"default:0"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

func (p *Product) Ref() catalog.ProductRef {
	return catalog.ProductRef{
		Category:      p.Category,
		SubCategory:   p.SubCategory,
		ChildCategory: p.ChildCategory,
	}
}

// CatalogVariants converts the stored variant rows for the selection helpers.
func (p *Product) CatalogVariants() []catalog.Variant {
	out := make([]catalog.Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		out = append(out, catalog.Variant{Diameter: v.Diameter, Length: v.Length, Finish: v.Finish})
	}
	return out
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// ProductRequest is the admin editor state. Materials, applications and the
// two variant axes arrive structured and are flattened on save.
type ProductRequest struct {
	Name                      string                  `json:"name" binding:"required" example:"Hex Head Bolt"`
	Slug                      string                  `json:"slug" example:"hex-head-bolt"`
	Category                  string                  `json:"category" binding:"required" example:"Fasteners"`
	SubCategory               string                  `json:"sub_category"`
	ChildCategory             string                  `json:"child_category"`
	Materials                 []catalog.MaterialRow   `json:"materials"`
	HeadType                  string                  `json:"head_type"`
	DriveType                 string                  `json:"drive_type"`
	ThreadType                string                  `json:"thread_type"`
	ShortDescription          string                  `json:"short_description"`
	LongDescription           string                  `json:"long_description"`
	Images                    []string                `json:"images"`
	TechnicalDrawing          *string                 `json:"technical_drawing"`
	Specifications            []catalog.Specification `json:"specifications"`
	DimensionalSpecifications []catalog.Dimension     `json:"dimensional_specifications"`
	Applications              []catalog.Application   `json:"applications"`
	Sizes                     []catalog.SizeRow       `json:"sizes"`
	Finishes                  []catalog.FinishRow     `json:"finishes"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ProductEditorResponse is a stored product decoded back into editor rows.
type ProductEditorResponse struct {
	Product      Product               `json:"product"`
	Materials    []catalog.MaterialRow `json:"materials"`
	Applications []catalog.Application `json:"applications"`
	Sizes        []catalog.SizeRow     `json:"sizes"`
	Finishes     []catalog.FinishRow   `json:"finishes"`
}

// ProductListItem is the card shown on listing pages.
type ProductListItem struct {
	ID               uuid.UUID `json:"id"`
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ShortDescription string    `json:"short_description"`
	Image            string    `json:"image"`
}

func (p *Product) ToListItem() ProductListItem {
	item := ProductListItem{
		ID:               p.ID,
		Slug:             p.Slug,
		Name:             p.Name,
		Category:         p.Category,
		ShortDescription: p.ShortDescription,
	}
	if len(p.Images) > 0 {
		item.Image = p.Images[0]
	}
	return item
}

// ProductListResponse carries the page of products together with how the
// category filter was resolved.
type ProductListResponse struct {
	Products      []ProductListItem   `json:"products"`
	Resolved      *catalog.Resolution `json:"resolved,omitempty"`
	CategoryToken string              `json:"category_token,omitempty"`
}

// ProductDetailResponse is the storefront product page.
type ProductDetailResponse struct {
	Product      Product               `json:"product"`
	Applications []catalog.Application `json:"applications"`
	Options      catalog.Options       `json:"options"`
}

func NewProductListResponse(products []Product, resolved *catalog.Resolution, token string) ProductListResponse {
	items := make([]ProductListItem, len(products))
	for i := range products {
		items[i] = products[i].ToListItem()
	}
	return ProductListResponse{Products: items, Resolved: resolved, CategoryToken: token}
}
