package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is one audited admin write: who changed which catalogue,
// careers or site record, and the row before and after.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID      `json:"admin_id" gorm:"type:uuid;not null;index:idx_activity_admin_date,sort:desc"`
	AdminEmail   string         `json:"admin_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"` // e.g. created_product
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"`
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"`
	Status       string         `json:"status" gorm:"not null"`
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_admin_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityChanges holds the column snapshots taken around a write. Before is
// nil for creates and After is nil for deletes.
type ActivityChanges struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}

type ActivityLogResponse struct {
	ID           uuid.UUID        `json:"id"`
	AdminID      uuid.UUID        `json:"admin_id"`
	AdminEmail   string           `json:"admin_email"`
	Action       string           `json:"action"`
	ResourceType string           `json:"resource_type"`
	ResourceID   string           `json:"resource_id"`
	ResourceName string           `json:"resource_name"`
	Changes      *ActivityChanges `json:"changes,omitempty"`
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	IPAddress    string           `json:"ip_address"`
	UserAgent    string           `json:"user_agent"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (al *ActivityLog) ToResponse() ActivityLogResponse {
	resp := ActivityLogResponse{
		ID:           al.ID,
		AdminID:      al.AdminID,
		AdminEmail:   al.AdminEmail,
		Action:       al.Action,
		ResourceType: al.ResourceType,
		ResourceID:   al.ResourceID,
		ResourceName: al.ResourceName,
		Status:       al.Status,
		ErrorMessage: al.ErrorMessage,
		IPAddress:    al.IPAddress,
		UserAgent:    al.UserAgent,
		CreatedAt:    al.CreatedAt,
	}
	if len(al.Changes) > 0 {
		var changes ActivityChanges
		if json.Unmarshal(al.Changes, &changes) == nil {
			resp.Changes = &changes
		}
	}
	return resp
}

// ════════════════════════════════════════════════════════════
// Actions and resources
// ════════════════════════════════════════════════════════════

const (
	ActionCreate = "created"
	ActionUpdate = "updated"
	ActionDelete = "deleted"
	ActionUpload = "uploaded"
	ActionLogin  = "logged_in"
	ActionLogout = "logged_out"
)

const (
	ResourceTypeProduct      = "product"
	ResourceTypeCategory     = "category"
	ResourceTypeJob          = "job"
	ResourceTypeJobAttribute = "job_attribute"
	ResourceTypeBlog         = "blog"
	ResourceTypeEnquiry      = "enquiry"
	ResourceTypeGallery      = "gallery"
	ResourceTypeSiteContent  = "site_content"
	ResourceTypeMenuItem     = "menu_item"
	ResourceTypeSiteLink     = "site_link"
	ResourceTypeMedia        = "media"
	ResourceTypeAdmin        = "admin"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActionName joins a verb and resource type, e.g. "created_product".
func ActionName(verb, resourceType string) string {
	return verb + "_" + resourceType
}
