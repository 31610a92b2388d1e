package ports

import (
	"context"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

// FindOptions tunes account lookups.
type FindOptions struct {
	// IncludeSensitive loads PasswordHash, which is excluded by default.
	IncludeSensitive bool
}

// AccountRepository is the document store adapter for admins and clients.
type AccountRepository interface {
	FindByID(ctx context.Context, role domain.Role, id string, opts FindOptions) (*domain.Account, error)
	// FindByEmail always includes the password hash; it backs login.
	FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error)
	Save(ctx context.Context, a *domain.Account) error
}
