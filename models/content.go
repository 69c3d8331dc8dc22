package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Blogs
// ════════════════════════════════════════════════════════════

type Blog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Category  string    `json:"category" gorm:"index"`
	Excerpt   string    `json:"excerpt" gorm:"type:text"`
	Content   string    `json:"content" gorm:"type:text"` // sanitised HTML
	Author    string    `json:"author"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Blog) TableName() string { return "blogs" }

type BlogRequest struct {
	Title    string `json:"title" binding:"required" example:"Choosing the right drywall screw"`
	Category string `json:"category" example:"Guides"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author" example:"Durable Team"`
	ImageURL string `json:"image_url"`
}

// ════════════════════════════════════════════════════════════
// Enquiries
// ════════════════════════════════════════════════════════════

const (
	EnquiryStatusNew       = "new"
	EnquiryStatusRead      = "read"
	EnquiryStatusContacted = "contacted"
)

type Enquiry struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email" gorm:"not null;index"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"type:text"`
	Status    string    `json:"status" gorm:"not null;default:'new';index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	if e.Status == "" {
		e.Status = EnquiryStatusNew
	}
	return nil
}

func (Enquiry) TableName() string { return "enquiries" }

type EnquiryRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject"`
	Message   string `json:"message" binding:"required"`
}

type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read contacted" example:"read"`
}

// ════════════════════════════════════════════════════════════
// Life at Durable gallery
// ════════════════════════════════════════════════════════════

type GalleryItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title"`
	Tag       string    `json:"tag" gorm:"index"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (GalleryItem) TableName() string { return "life_gallery" }

type GalleryItemRequest struct {
	Title    string `json:"title"`
	Tag      string `json:"tag" example:"Events"`
	ImageURL string `json:"image_url" binding:"required"`
}

// ════════════════════════════════════════════════════════════
// Site content, menu and links
// ════════════════════════════════════════════════════════════

// SiteContentID is the primary key of the single site_content row.
const SiteContentID = 1

// SiteContent holds the homepage imagery. There is exactly one row.
type SiteContent struct {
	ID            int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	HeroBg        string `json:"hero_bg"`
	CatFasteners  string `json:"cat_fasteners"`
	CatFittings   string `json:"cat_fittings"`
	CatAutomotive string `json:"cat_automotive"`
	AboutImg      string `json:"about_img"`
}

func (SiteContent) TableName() string { return "site_content" }

type UpdateSiteContentRequest struct {
	HeroBg        *string `json:"hero_bg"`
	CatFasteners  *string `json:"cat_fasteners"`
	CatFittings   *string `json:"cat_fittings"`
	CatAutomotive *string `json:"cat_automotive"`
	AboutImg      *string `json:"about_img"`
}

type MenuItem struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Label   string    `json:"label" gorm:"not null"`
	Path    string    `json:"path" gorm:"not null"`
	IconKey string    `json:"icon_key"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (MenuItem) TableName() string { return "menu_items" }

type MenuItemRequest struct {
	Label   string `json:"label" binding:"required" example:"Products"`
	Path    string `json:"path" binding:"required" example:"/products"`
	IconKey string `json:"icon_key" example:"box"`
}

// SiteLink maps a well-known key (e.g. "whatsapp", "catalogue_pdf") to a URL.
type SiteLink struct {
	KeyName string `json:"key_name" gorm:"primaryKey"`
	URL     string `json:"url"`
}

func (SiteLink) TableName() string { return "site_links" }

type SiteLinkRequest struct {
	KeyName string `json:"key_name" binding:"required" example:"whatsapp"`
	URL     string `json:"url" binding:"required"`
}

// DashboardStats are the headline counts on the admin dashboard.
type DashboardStats struct {
	Products     int64 `json:"products"`
	Enquiries    int64 `json:"enquiries"`
	NewEnquiries int64 `json:"new_enquiries"`
	Blogs        int64 `json:"blogs"`
	Jobs         int64 `json:"jobs"`
}
