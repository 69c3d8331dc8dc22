package services

import (
	"gorm.io/gorm"

	category_cache "github.com/durable-fastener/durable-cms-backend/cache"
)

// Services is every service the HTTP layer depends on, built once in main.
type Services struct {
	Categories *CategoryService
	Products   *ProductService
	Jobs       *JobService
	Attributes *AttributeService
	Content    *ContentService
	Uploads    *UploadService
	Finder     *FinderService
	Datasheets *DatasheetService

	Auth     *AdminAuthService
	Sessions *AdminSessionService
	Activity *ActivityLogService
	JWT      *JWTService
}

// Deps are the external collaborators. Store and Recommender may be nil.
type Deps struct {
	DB          *gorm.DB
	Cache       *category_cache.Store
	JWT         *JWTService
	Store       ObjectStore
	Recommender Recommender
}

func New(d Deps) *Services {
	categories := NewCategoryService(d.DB, d.Cache)
	products := NewProductService(d.DB, categories)
	sessions := NewAdminSessionService(d.DB)

	return &Services{
		Categories: categories,
		Products:   products,
		Jobs:       NewJobService(d.DB),
		Attributes: NewAttributeService(d.DB),
		Content:    NewContentService(d.DB),
		Uploads:    NewUploadService(d.Store),
		Finder:     NewFinderService(products, d.Recommender),
		Datasheets: NewDatasheetService(products),
		Auth:       NewAdminAuthService(d.DB, d.JWT, sessions),
		Sessions:   sessions,
		Activity:   NewActivityLogService(d.DB),
		JWT:        d.JWT,
	}
}
