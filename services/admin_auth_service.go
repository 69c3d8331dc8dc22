package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminSuspended     = errors.New("admin account is suspended")
	ErrSessionExpired     = errors.New("session expired or revoked")
)

// MinPasswordLength is the shortest password an admin may set.
const MinPasswordLength = 8

// AdminAuthService handles admin authentication operations
type AdminAuthService struct {
	db       *gorm.DB
	jwt      *JWTService
	sessions *AdminSessionService
}

func NewAdminAuthService(db *gorm.DB, jwt *JWTService, sessions *AdminSessionService) *AdminAuthService {
	return &AdminAuthService{db: db, jwt: jwt, sessions: sessions}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashToken hashes a token using SHA256 for storage in database
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// ════════════════════════════════════════════════════════════
// Accounts
// ════════════════════════════════════════════════════════════

// CreateAdmin stores a new admin with a hashed password. Used by the seed
// command; there is no self sign-up.
func (s *AdminAuthService) CreateAdmin(ctx context.Context, email, name, password, role string) (*models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(name) == "" {
		return nil, invalidf("email and name are required")
	}
	if len(password) < MinPasswordLength {
		return nil, invalidf("password must be at least %d characters", MinPasswordLength)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &models.Admin{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

func (s *AdminAuthService) AdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "load admin")
	}
	return &admin, nil
}

// ════════════════════════════════════════════════════════════
// Login / Logout
// ════════════════════════════════════════════════════════════

// Login checks credentials, issues a token and opens a session for it.
func (s *AdminAuthService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (*models.AdminLoginResponse, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load admin: %w", err)
	}
	if !VerifyPassword(admin.PasswordHash, password) {
		config.Log.Warn("[auth.login] wrong password", zap.String("email", admin.Email))
		return nil, ErrInvalidCredentials
	}
	if !admin.IsActive() {
		return nil, ErrAdminSuspended
	}

	token, err := s.jwt.GenerateAdminJWT(admin.ID.String(), admin.Email, admin.Role)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.CreateSession(ctx, admin.ID, HashToken(token), ipAddress, userAgent); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&admin).Update("last_login_at", now).Error; err != nil {
		config.Log.Warn("[auth.login] failed to stamp last login", zap.Error(err))
	}
	admin.LastLoginAt = &now

	config.Log.Info("[auth.login] admin signed in", zap.String("admin_id", admin.ID.String()))
	return &models.AdminLoginResponse{Admin: admin.ToResponse(), Token: token}, nil
}

func (s *AdminAuthService) Logout(ctx context.Context, adminID uuid.UUID) error {
	return s.sessions.DeactivateSession(ctx, adminID)
}

// Authenticate verifies a token, requires its session to be live, and
// returns the admin it belongs to.
func (s *AdminAuthService) Authenticate(ctx context.Context, token string) (*models.Admin, error) {
	claims, err := s.jwt.VerifyAdminJWT(token)
	if err != nil {
		return nil, err
	}
	tokenHash := HashToken(token)
	if _, err := s.sessions.ActiveSession(ctx, tokenHash); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	if err := s.sessions.UpdateSessionActivity(ctx, tokenHash); err != nil {
		config.Log.Warn("[auth] failed to update session activity", zap.Error(err))
	}

	id, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, fmt.Errorf("bad admin id claim: %w", err)
	}
	admin, err := s.AdminByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !admin.IsActive() {
		return nil, ErrAdminSuspended
	}
	return admin, nil
}
