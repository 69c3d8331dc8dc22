package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/models"
)

// ActivityLogService records and lists admin actions.
type ActivityLogService struct {
	db *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{db: db}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	AdminID      uuid.UUID
	AdminEmail   string
	Action       string // e.g. models.ActionName(models.ActionCreate, models.ResourceTypeProduct)
	ResourceType string
	ResourceID   string
	ResourceName string
	Changes      *models.ActivityChanges
	Status       string
	ErrorMessage string
	IPAddress    string
	UserAgent    string
}

// LogActivity writes one entry. Failures are logged and swallowed so the
// admin request that triggered them still completes.
func (s *ActivityLogService) LogActivity(ctx context.Context, req LogActivityRequest) {
	if req.AdminID == uuid.Nil {
		config.Log.Warn("[activity-log] admin id missing", zap.String("action", req.Action))
		return
	}

	var changesJSON []byte
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			config.Log.Warn("[activity-log] failed to marshal changes", zap.Error(err))
			data = []byte("{}")
		}
		changesJSON = data
	}
	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      changesJSON,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    req.IPAddress,
		UserAgent:    req.UserAgent,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		config.Log.Error("[activity-log] failed to create entry", zap.Error(err))
		return
	}

	config.Log.Info("[activity-log] recorded",
		zap.String("action", req.Action),
		zap.String("resource_id", req.ResourceID),
		zap.String("admin", req.AdminEmail),
	)
}

// CreateChanges pairs the snapshots taken around a write. Nothing is
// recorded when both are missing.
func CreateChanges(before, after map[string]any) *models.ActivityChanges {
	if before == nil && after == nil {
		return nil
	}
	return &models.ActivityChanges{Before: before, After: after}
}

// ActivityLogFilter narrows the activity listing.
type ActivityLogFilter struct {
	AdminID      string `form:"admin_id"`
	ResourceType string `form:"resource_type"`
	Search       string `form:"search"`
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
}

func (s *ActivityLogService) List(ctx context.Context, f ActivityLogFilter) ([]models.ActivityLogResponse, models.Pagination, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > maxPageSize {
		f.Limit = 20
	}

	q := s.db.WithContext(ctx).Model(&models.ActivityLog{})
	if f.AdminID != "" {
		q = q.Where("admin_id = ?", f.AdminID)
	}
	if f.ResourceType != "" {
		q = q.Where("resource_type = ?", f.ResourceType)
	}
	if f.Search != "" {
		like := containsPattern(f.Search)
		q = q.Where(`resource_name LIKE ? ESCAPE '\' OR admin_email LIKE ? ESCAPE '\' OR action LIKE ? ESCAPE '\'`, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, models.Pagination{}, fmt.Errorf("count activity logs: %w", err)
	}
	var logs []models.ActivityLog
	if err := q.Order("created_at DESC").Offset((f.Page - 1) * f.Limit).Limit(f.Limit).Find(&logs).Error; err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list activity logs: %w", err)
	}

	out := make([]models.ActivityLogResponse, len(logs))
	for i := range logs {
		out[i] = logs[i].ToResponse()
	}
	return out, models.NewPagination(f.Page, f.Limit, total), nil
}
