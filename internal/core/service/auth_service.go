package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

// AuthService issues bearer tokens for admins and clients.
type AuthService struct {
	repo      ports.AccountRepository
	hasher    ports.PasswordHasher
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, hasher: hasher, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login returns a signed token for the account matching email and password.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, role domain.Role, email, password string) (string, *domain.Account, error) {
	if !role.Valid() || email == "" || password == "" {
		return "", nil, domain.ErrUnauthorized.WithMessage("invalid credentials")
	}

	account, err := s.repo.FindByEmail(ctx, role, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrUnauthorized.WithMessage("invalid credentials")
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", nil, domain.ErrUnauthorized.WithMessage("invalid credentials")
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":  account.ID,
		"role": string(account.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
