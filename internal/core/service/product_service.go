package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

const (
	msgProductAdded   = "Product added successfully!"
	msgProductUpdated = "Product updated successfully!"
	msgProductFound   = "Product fetched successfully!"
)

// replayPoll is how often a request waits on a key held by a running create.
const replayPoll = 50 * time.Millisecond

// ProductService implements the admin product controls.
type ProductService struct {
	repo   ports.ProductRepository
	idem   ports.IdempotencyStore
	now    func() time.Time
	logger zerolog.Logger

	// replayWait bounds how long a request waits for a concurrent create
	// holding the same Idempotency-Key before reporting a conflict.
	replayWait time.Duration
}

// NewProductService wires the service. idem may be nil, in which case
// Idempotency-Key values are ignored.
func NewProductService(repo ports.ProductRepository, idem ports.IdempotencyStore, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, idem: idem, now: time.Now, logger: logger, replayWait: 2 * time.Second}
}

// AddProduct creates a product stamped with its addedOn time. When an
// idempotency key was already used, the product it created is returned instead.
func (s *ProductService) AddProduct(ctx context.Context, details *ports.ProductDetails, idempotencyKey string) (*ports.ProductResult, error) {
	if details == nil {
		return nil, domain.ErrInvalidInput.WithMessage("Product details are necessary!")
	}

	reserved, replay, err := s.claim(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if replay != nil {
		return replay, nil
	}

	created, err := s.repo.Create(ctx, &domain.Product{
		Name:     details.Name,
		Price:    details.Price,
		Quantity: details.Quantity,
		AddedOn:  domain.FormatTimestamp(s.now()),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		if reserved {
			if rerr := s.idem.Release(ctx, idempotencyKey); rerr != nil {
				s.logger.Warn().Err(rerr).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("add product: %w", err)
	}

	if reserved {
		if err := s.idem.Remember(ctx, idempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("product_id", created.ID).Msg("failed to remember idempotency key")
		}
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product added")
	return &ports.ProductResult{Message: msgProductAdded, Product: created}, nil
}

// claim reserves key for this request. When the key already belongs to an
// earlier create, that product is returned as a replay. reserved is false
// when there is no key or the store cannot answer; the create then proceeds
// unbound.
func (s *ProductService) claim(ctx context.Context, key string) (reserved bool, replay *ports.ProductResult, err error) {
	if key == "" || s.idem == nil {
		return false, nil, nil
	}

	ok, err := s.idem.Reserve(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("idempotency reserve failed, creating anyway")
		return false, nil, nil
	}
	if ok {
		return true, nil, nil
	}

	productID, err := s.awaitBinding(ctx, key)
	if err != nil {
		return false, nil, err
	}
	if productID == "" {
		return false, nil, nil
	}

	existing, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The key outlived its product; this request rebinds it.
			return true, nil, nil
		}
		return false, nil, fmt.Errorf("add product: replay: %w", err)
	}

	s.logger.Info().Str("product_id", existing.ID).Msg("idempotent replay")
	return false, &ports.ProductResult{Message: msgProductAdded, Product: existing, Replayed: true}, nil
}

// awaitBinding waits until the create holding key binds its product. It
// returns "" when the key disappeared or the store cannot answer.
func (s *ProductService) awaitBinding(ctx context.Context, key string) (string, error) {
	deadline := time.Now().Add(s.replayWait)
	for {
		productID, found, err := s.idem.Lookup(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
			return "", nil
		}
		if !found || productID != "" {
			return productID, nil
		}
		if !time.Now().Before(deadline) {
			return "", domain.ErrConflict.WithMessage("A product with this Idempotency-Key is still being created!")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(replayPoll):
		}
	}
}

// UpdateProduct applies patch to the stored product. name and price replace
// the stored values, quantity is added to the current stock. Zero values
// ("" or 0) are skipped exactly like absent fields. updatedOn is refreshed on
// every successful call, even when nothing else changed.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch *ports.ProductPatch) (*ports.ProductResult, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID.WithMessage("Invalid ID")
	}
	if patch == nil {
		return nil, domain.ErrInvalidInput.WithMessage("Product details are necessary!")
	}

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPatch(product, patch)
	product.UpdatedOn = domain.FormatTimestamp(s.now())

	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to save product")
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.Info().Str("product_id", saved.ID).Int("quantity", saved.Quantity).Msg("product updated")
	return &ports.ProductResult{Message: msgProductUpdated, Product: saved}, nil
}

// GetProduct fetches a single product.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*ports.ProductResult, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID.WithMessage("Invalid ID")
	}
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.ProductResult{Message: msgProductFound, Product: product}, nil
}

func (s *ProductService) find(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound.WithMessage("Product not found!")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func applyPatch(p *domain.Product, patch *ports.ProductPatch) {
	if patch.Name != nil && *patch.Name != "" {
		p.Name = *patch.Name
	}
	if patch.Price != nil && *patch.Price != 0 {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil && *patch.Quantity != 0 {
		p.Quantity += *patch.Quantity
	}
}
