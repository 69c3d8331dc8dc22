package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/jobcodec"
)

// Job is a careers posting. The structured editor fields are compiled into
// Description and are not stored separately.
type Job struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Department  string    `json:"department" gorm:"index"`
	Type        string    `json:"type"`
	Gender      string    `json:"gender" gorm:"default:'Any'"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	SalaryMin   *int      `json:"salary_min"`
	SalaryMax   *int      `json:"salary_max"`
	Experience  string    `json:"experience"`
	Skills      string    `json:"skills"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.Must(uuid.NewV7())
	}
	if j.Gender == "" {
		j.Gender = "Any"
	}
	return nil
}

func (Job) TableName() string {
	return "jobs"
}

// JobRequest is the job editor form. The embedded fields are compiled into
// the description on save.
type JobRequest struct {
	Title      string `json:"title" binding:"required" example:"Dispatch Executive"`
	Department string `json:"department" example:"Logistics"`
	Type       string `json:"type" example:"Full Time"`
	Gender     string `json:"gender" binding:"omitempty,oneof=Any Male Female" example:"Any"`
	Location   string `json:"location" example:"Rajkot"`
	Salary     string `json:"salary" example:"As per industry standards"`
	SalaryMin  *int   `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax  *int   `json:"salary_max" binding:"omitempty,min=0"`
	Experience string `json:"experience" example:"1-3 years"`
	Skills     string `json:"skills"`
	jobcodec.Fields
}

// JobEditorResponse is a stored job with its description decompiled.
type JobEditorResponse struct {
	Job    Job             `json:"job"`
	Fields jobcodec.Fields `json:"fields"`
}

// ════════════════════════════════════════════════════════════
// Attribute options
// ════════════════════════════════════════════════════════════

const (
	AttributeDepartment = "department"
	AttributeLocation   = "location"
	AttributeType       = "type"
)

// JobAttribute is one entry of a dropdown vocabulary, partitioned by Category.
// Values are not unique within a category.
type JobAttribute struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Category  string    `json:"category" gorm:"not null;index"`
	Value     string    `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (a *JobAttribute) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (JobAttribute) TableName() string {
	return "job_attributes"
}

type JobAttributeRequest struct {
	Category string `json:"category" binding:"required,oneof=department location type" example:"department"`
	Value    string `json:"value" binding:"required" example:"Logistics"`
}

// JobAttributeGroups is the public dropdown payload.
type JobAttributeGroups struct {
	Departments []string `json:"departments"`
	Locations   []string `json:"locations"`
	Types       []string `json:"types"`
}
