package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AdminRoleSuperAdmin = "super_admin"
	AdminRoleEditor     = "editor"

	AdminStatusActive    = "active"
	AdminStatusSuspended = "suspended"
)

// Admin is a CMS operator. Editors manage catalogue, careers and site
// content; super admins can additionally read the activity log.
type Admin struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"` // stored lower-cased
	Name         string     `json:"name" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"not null;index"`
	Status       string     `json:"status" gorm:"not null;index"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Role == "" {
		a.Role = AdminRoleEditor
	}
	if a.Status == "" {
		a.Status = AdminStatusActive
	}
	return nil
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) IsActive() bool {
	return a.Status == AdminStatusActive
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ops@durablefastener.com"`
	Password string `json:"password" binding:"required"`
}

// AdminResponse is an Admin without credentials.
type AdminResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AdminLoginResponse struct {
	Admin AdminResponse `json:"admin"`
	Token string        `json:"token"`
}

func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		Status:      a.Status,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}
