package service

import (
	"errors"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 24 * time.Hour

// AuthService guards admin operations with one shared secret. The secret is
// only kept as a bcrypt hash; callers either send it on every request or
// trade it for a short-lived JWT.
type AuthService struct {
	secretHash []byte
	jwtSecret  []byte
	now        func() time.Time
}

func NewAuthService(adminSecret, jwtSecret string) (*AuthService, error) {
	if adminSecret == "" {
		return nil, errors.New("admin secret is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{secretHash: hash, jwtSecret: []byte(jwtSecret), now: time.Now}, nil
}

// CheckSecret compares secret against the configured one.
func (s *AuthService) CheckSecret(secret string) error {
	if secret == "" || bcrypt.CompareHashAndPassword(s.secretHash, []byte(secret)) != nil {
		return apperr.Unauthorized("auth.secret")
	}
	return nil
}

// IssueToken exchanges the shared secret for a signed admin token.
func (s *AuthService) IssueToken(secret string) (string, time.Time, error) {
	if err := s.CheckSecret(secret); err != nil {
		return "", time.Time{}, err
	}
	exp := s.now().Add(adminTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// VerifyToken accepts only unexpired HS256 tokens with role admin.
func (s *AuthService) VerifyToken(tokenStr string) error {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return apperr.Unauthorized("auth.token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperr.Unauthorized("auth.token")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return apperr.Unauthorized("auth.token")
	}
	return nil
}
