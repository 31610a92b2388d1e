package ports

import (
	"context"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, role domain.Role, email, password string) (string, *domain.Account, error)
}
