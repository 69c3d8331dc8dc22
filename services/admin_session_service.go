package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/utils"
)

// SessionTTL bounds a single admin session.
const SessionTTL = 24 * time.Hour

// AdminSessionService handles admin session operations
type AdminSessionService struct {
	db *gorm.DB
}

func NewAdminSessionService(db *gorm.DB) *AdminSessionService {
	return &AdminSessionService{db: db}
}

// CreateSession records a new session keyed by the hash of its token.
func (s *AdminSessionService) CreateSession(ctx context.Context, adminID uuid.UUID, tokenHash, ipAddress, userAgent string) (*models.AdminSession, error) {
	now := time.Now()
	session := &models.AdminSession{
		AdminID:        adminID,
		TokenHash:      tokenHash,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		Device:         utils.DescribeUserAgent(userAgent),
		LastActivityAt: now,
		ExpiresAt:      now.Add(SessionTTL),
		IsActive:       true,
	}

	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		config.Log.Error("[session.create] failed", zap.Error(err))
		return nil, err
	}

	config.Log.Info("[session.create] created",
		zap.String("session_id", session.ID.String()),
		zap.String("admin_id", adminID.String()),
	)
	return session, nil
}

// ActiveSession returns the live, unexpired session for a token hash.
func (s *AdminSessionService) ActiveSession(ctx context.Context, tokenHash string) (*models.AdminSession, error) {
	var session models.AdminSession
	err := s.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&session).Error
	if err != nil {
		return nil, notFound(err, "load session")
	}
	if !session.Live(time.Now()) {
		return nil, ErrNotFound
	}
	return &session, nil
}

// UpdateSessionActivity updates the last activity timestamp for a session
func (s *AdminSessionService) UpdateSessionActivity(ctx context.Context, tokenHash string) error {
	if err := s.db.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND is_active = ?", tokenHash, true).
		Update("last_activity_at", time.Now()).Error; err != nil {
		config.Log.Warn("[session.touch] failed", zap.Error(err))
		return err
	}
	return nil
}

// DeactivateSession ends every active session of an admin.
func (s *AdminSessionService) DeactivateSession(ctx context.Context, adminID uuid.UUID) error {
	if err := s.db.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("admin_id = ? AND is_active = ?", adminID, true).
		Update("is_active", false).Error; err != nil {
		config.Log.Error("[session.deactivate] failed", zap.Error(err))
		return err
	}

	config.Log.Info("[session.deactivate] deactivated", zap.String("admin_id", adminID.String()))
	return nil
}

// CleanupExpiredSessions removes expired sessions and inactive ones idle for
// more than a week.
func (s *AdminSessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	now := time.Now()
	result := s.db.WithContext(ctx).
		Where("expires_at < ? OR (is_active = ? AND last_activity_at < ?)", now, false, now.Add(-7*24*time.Hour)).
		Delete(&models.AdminSession{})
	if result.Error != nil {
		config.Log.Error("[session.cleanup] failed", zap.Error(result.Error))
		return 0, result.Error
	}

	config.Log.Info("[session.cleanup] removed", zap.Int64("count", result.RowsAffected))
	return result.RowsAffected, nil
}

// CountActiveSessions counts total active sessions across all admins
func (s *AdminSessionService) CountActiveSessions(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("is_active = ? AND expires_at > ?", true, time.Now()).
		Count(&count).Error
	return count, err
}
