// Package auth issues and verifies the tokens guarding the payment routes.
// User identity itself lives in the upstream channel platform; this service
// only validates what arrives on the wire.
package auth

import (
	"errors"
	"time"

	"benki/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	IssueToken(claims *models.UserClaims) (string, error)
	ParseToken(token string) (*models.UserClaims, error)
	VerifyAdminSecret(secret string) error
}

type service struct {
	jwtSecret       []byte
	adminSecretHash []byte
	tokenTTL        time.Duration
}

// NewService creates an auth service. adminSecretHash is the bcrypt hash of
// the operations API secret used by tenant-administration endpoints.
func NewService(jwtSecret string, adminSecretHash string) Service {
	return &service{
		jwtSecret:       []byte(jwtSecret),
		adminSecretHash: []byte(adminSecretHash),
		tokenTTL:        15 * time.Minute,
	}
}

func (s *service) IssueToken(claims *models.UserClaims) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *service) ParseToken(tokenString string) (*models.UserClaims, error) {
	claims := &models.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TenantID == "" {
		return nil, errors.New("token missing tenant")
	}
	return claims, nil
}

func (s *service) VerifyAdminSecret(secret string) error {
	if err := bcrypt.CompareHashAndPassword(s.adminSecretHash, []byte(secret)); err != nil {
		return errors.New("invalid admin secret")
	}
	return nil
}

// HashAdminSecret produces the bcrypt hash stored in configuration for the
// operations API secret.
func HashAdminSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
