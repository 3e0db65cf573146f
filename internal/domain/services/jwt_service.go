package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const tokenIssuer = "pdrims-http-service"

// ErrInvalidToken covers malformed, expired, and revoked tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// InterfaceJWTService defines the session token service interface
type InterfaceJWTService interface {
	GenerateToken(user *models.User) (string, time.Time, error)
	ParseToken(ctx context.Context, tokenString string) (*JWTClaims, error)
	RevokeToken(ctx context.Context, claims *JWTClaims) error
}

// JWTClaims is the payload of a session token. RegisteredClaims.ID is a
// random UUID used as the revocation key.
type JWTClaims struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and checks HS256 session tokens.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	Tokens    InterfaceTokenStore
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config, tokens InterfaceTokenStore) InterfaceJWTService {
	ttl := cfg.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secretKey: []byte(cfg.JWTSecretKey),
		ttl:       ttl,
		Tokens:    tokens,
	}
}

// 1 GenerateToken issues a token for user and returns its expiry
func (s *JWTService) GenerateToken(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := &JWTClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(user.ID),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// 2 ParseToken verifies signature, expiry, and revocation
func (s *JWTService) ParseToken(ctx context.Context, tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}

	revoked, err := s.Tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check token revocation: %w", ErrStorageUnavailable)
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// 3 RevokeToken blocks a token for the rest of its lifetime
func (s *JWTService) RevokeToken(ctx context.Context, claims *JWTClaims) error {
	if claims == nil || claims.ID == "" {
		return ErrInvalidToken
	}
	ttl := s.ttl
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.Tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", ErrStorageUnavailable)
	}
	return nil
}
