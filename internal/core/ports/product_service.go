package ports

import (
	"context"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

// ProductDetails carries the fields of a new product.
type ProductDetails struct {
	Name     string
	Price    float64
	Quantity int
}

// ProductPatch is a partial update. A nil field is absent; a zero value is
// treated as absent too (see ProductService.UpdateProduct).
type ProductPatch struct {
	Name     *string
	Price    *float64
	Quantity *int // delta added to the stored stock
}

// ProductResult is returned by every product operation.
type ProductResult struct {
	Message string
	Product *domain.Product
	// Replayed is true when an Idempotency-Key matched an earlier create.
	Replayed bool
}

// ProductControl defines admin operations on products.
type ProductControl interface {
	AddProduct(ctx context.Context, details *ProductDetails, idempotencyKey string) (*ProductResult, error)
	UpdateProduct(ctx context.Context, id string, patch *ProductPatch) (*ProductResult, error)
	GetProduct(ctx context.Context, id string) (*ProductResult, error)
}
