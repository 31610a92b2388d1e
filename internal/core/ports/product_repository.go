package ports

import (
	"context"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

// ProductRepository is the document store adapter for products.
type ProductRepository interface {
	// Create assigns an id, persists the product and returns the stored document.
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID returns domain.ErrNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Save persists an already-fetched, mutated product in place.
	Save(ctx context.Context, p *domain.Product) (*domain.Product, error)
}

// IdempotencyStore remembers which product a client-supplied key created.
// A key is reserved before the product is created and bound to it afterwards,
// so concurrent requests with the same key cannot both create.
type IdempotencyStore interface {
	// Reserve claims key. It reports false when the key is already reserved
	// or bound.
	Reserve(ctx context.Context, key string) (bool, error)
	// Lookup returns the product bound to key. found with an empty productID
	// means the key is reserved by a create that has not finished.
	Lookup(ctx context.Context, key string) (productID string, found bool, err error)
	// Remember binds key to productID.
	Remember(ctx context.Context, key, productID string) error
	// Release drops a reservation whose create failed.
	Release(ctx context.Context, key string) error
}
