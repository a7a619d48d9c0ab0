package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ftzops/internal/config"
	"ftzops/internal/domain"
)

// Claims represents the admin token claims gating the privileged refresh
// action.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// ScopeAdmin is the scope required for the refresh action.
const ScopeAdmin = "admin"

// AuthService defines the admin-token contract.
type AuthService interface {
	IssueToken(subject string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	cfg config.JWTConfig
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(cfg config.JWTConfig) AuthService {
	return &authService{cfg: cfg}
}

// IssueToken mints an HS256 admin token for the given subject.
func (s *authService) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessExpiry)),
			ID:        uuid.New().String(),
		},
		Scope: ScopeAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies an admin token.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer))
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !token.Valid || claims.Scope != ScopeAdmin {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
