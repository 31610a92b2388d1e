package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

// PasswordService changes the password of an admin or client account.
type PasswordService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewPasswordService(repo ports.AccountRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *PasswordService {
	return &PasswordService{repo: repo, hasher: hasher, logger: logger}
}

// ChangePassword verifies the current password against the stored hash
// before persisting a hash of the new one. Checks run in order and the first
// failure wins: missing input, unknown account, wrong current password.
func (s *PasswordService) ChangePassword(ctx context.Context, in ports.ChangePasswordInput) (*ports.ChangePasswordResult, error) {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return nil, domain.ErrInvalidInput.WithMessage("Invalid password!")
	}

	account, err := s.repo.FindByID(ctx, in.Role, in.AccountID, ports.FindOptions{IncludeSensitive: true})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound.WithMessage("Account not found!")
		}
		return nil, fmt.Errorf("change password: %w", err)
	}

	if !s.hasher.Verify(in.CurrentPassword, account.PasswordHash) {
		s.logger.Info().Str("account_id", account.ID).Str("role", string(in.Role)).Msg("password change rejected")
		return nil, domain.ErrInvalidCredential.WithMessage("Incorrect current password!")
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("change password: hash: %w", err)
	}
	account.PasswordHash = hash

	if err := s.repo.Save(ctx, account); err != nil {
		s.logger.Error().Err(err).Str("account_id", account.ID).Msg("failed to persist password")
		return nil, fmt.Errorf("change password: %w", err)
	}

	s.logger.Info().Str("account_id", account.ID).Str("role", string(in.Role)).Msg("password changed")
	return &ports.ChangePasswordResult{Message: "Password changed successfully!"}, nil
}
