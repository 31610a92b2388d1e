package handler

import (
	"context"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

type stubProductService struct {
	addFn    func(ctx context.Context, details *ports.ProductDetails, key string) (*ports.ProductResult, error)
	updateFn func(ctx context.Context, id string, patch *ports.ProductPatch) (*ports.ProductResult, error)
	getFn    func(ctx context.Context, id string) (*ports.ProductResult, error)
}

func (s *stubProductService) AddProduct(ctx context.Context, details *ports.ProductDetails, key string) (*ports.ProductResult, error) {
	return s.addFn(ctx, details, key)
}

func (s *stubProductService) UpdateProduct(ctx context.Context, id string, patch *ports.ProductPatch) (*ports.ProductResult, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubProductService) GetProduct(ctx context.Context, id string) (*ports.ProductResult, error) {
	return s.getFn(ctx, id)
}

type stubPasswordService struct {
	changeFn func(ctx context.Context, in ports.ChangePasswordInput) (*ports.ChangePasswordResult, error)
}

func (s *stubPasswordService) ChangePassword(ctx context.Context, in ports.ChangePasswordInput) (*ports.ChangePasswordResult, error) {
	return s.changeFn(ctx, in)
}

type stubAuthService struct {
	loginFn func(ctx context.Context, role domain.Role, email, password string) (string, *domain.Account, error)
}

func (s *stubAuthService) Login(ctx context.Context, role domain.Role, email, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, role, email, password)
}
