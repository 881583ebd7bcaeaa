// Package auth implements the admin credential service: password checks
// against the stored bcrypt hash, signed token issue/verify, and the
// idempotent startup seed of the operator account.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/akash-insiders/community-hub/pkg/models"
	"github.com/akash-insiders/community-hub/pkg/repository"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// caller cannot tell which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RoleAdmin is the fixed role marker carried in issued tokens.
const RoleAdmin = "admin"

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	admins   repository.AdminRepo
	secret   []byte
	tokenTTL time.Duration
}

func NewService(admins repository.AdminRepo, secret string, tokenTTL time.Duration) *Service {
	return &Service{admins: admins, secret: []byte(secret), tokenTTL: tokenTTL}
}

// TokenTTL reports the configured token lifetime, used for the cookie expiry.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Authenticate looks up the admin record by email and compares the supplied
// password against its bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// IssueToken produces a signed HS256 token carrying the admin identity and
// the fixed role marker.
func (s *Service) IssueToken(admin *models.Admin) (string, error) {
	if admin == nil {
		return "", fmt.Errorf("admin is nil")
	}

	now := time.Now()
	claims := &Claims{
		Email: admin.Email,
		Name:  admin.Name,
		Role:  RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken checks signature and expiration and returns the claims. A
// malformed, expired, or foreign-signed token fails.
func (s *Service) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// EnsureSeedAdmin creates the operator account once. The check-then-insert is
// not guarded across processes; the unique index on admin email makes a
// concurrent duplicate insert fail instead of duplicating the account.
func (s *Service) EnsureSeedAdmin(ctx context.Context, email, name, password string) error {
	existing, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup seed admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	if _, err := s.admins.CreateAdmin(ctx, &models.Admin{Email: email, Name: name, PasswordHash: hash}); err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}

	return nil
}
