package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/catalog"
)

// Category is a top-level segment such as "Fasteners"
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// SubCategory belongs to exactly one Category
type SubCategory struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// ChildCategory belongs to exactly one SubCategory
type ChildCategory struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SubCategoryID uuid.UUID `json:"sub_category_id" gorm:"type:uuid;not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (c *ChildCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string      { return "categories" }
func (SubCategory) TableName() string   { return "sub_categories" }
func (ChildCategory) TableName() string { return "child_categories" }

func (c Category) ToCatalog() catalog.Category {
	return catalog.Category{ID: c.ID.String(), Name: c.Name}
}

func (s SubCategory) ToCatalog() catalog.SubCategory {
	return catalog.SubCategory{ID: s.ID.String(), CategoryID: s.CategoryID.String(), Name: s.Name}
}

func (c ChildCategory) ToCatalog() catalog.ChildCategory {
	return catalog.ChildCategory{ID: c.ID.String(), SubCategoryID: c.SubCategoryID.String(), Name: c.Name}
}

// CategoryRequest is used when adding a node at any level
type CategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Fasteners"`
}

// CategoryStatsResponse holds the node count per level
type CategoryStatsResponse struct {
	Categories      int `json:"categories"`
	SubCategories   int `json:"sub_categories"`
	ChildCategories int `json:"child_categories"`
}
