package ports

import (
	"context"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

// ChangePasswordInput identifies the account and carries both plaintexts.
type ChangePasswordInput struct {
	Role            domain.Role
	AccountID       string
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordResult deliberately has no account body.
type ChangePasswordResult struct {
	Message string
}

type PasswordService interface {
	ChangePassword(ctx context.Context, in ChangePasswordInput) (*ChangePasswordResult, error)
}
