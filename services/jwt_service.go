package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AdminTokenTTL bounds both the JWT and the session row created with it.
	AdminTokenTTL = 7 * 24 * time.Hour
	tokenIssuer   = "durable-cms"
)

var errEmptyClaims = errors.New("token missing admin id or email")

type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 admin tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &JWTService{secret: []byte(secret), ttl: AdminTokenTTL, now: time.Now}, nil
}

func (j *JWTService) GenerateAdminJWT(adminID, email, role string) (string, error) {
	if adminID == "" || email == "" {
		return "", errEmptyClaims
	}
	issued := j.now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(j.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

// VerifyAdminJWT checks signature, issuer and validity window. Only HS256 is
// accepted.
func (j *JWTService) VerifyAdminJWT(raw string) (*AdminJWTClaims, error) {
	var claims AdminJWTClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse admin token: %w", err)
	}
	if claims.AdminID == "" || claims.Email == "" {
		return nil, errEmptyClaims
	}
	return &claims, nil
}
