package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&AdminSession{},
		&ActivityLog{},
		&Category{},
		&SubCategory{},
		&ChildCategory{},
		&Product{},
		&ProductVariant{},
		&Job{},
		&JobAttribute{},
		&Blog{},
		&Enquiry{},
		&GalleryItem{},
		&SiteContent{},
		&MenuItem{},
		&SiteLink{},
	)
}
