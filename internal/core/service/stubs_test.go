package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory product repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	byID      map[string]*domain.Product
	seq       int
	createErr error
	saveErr   error
	findErr   error
	saves     int

	// onCreate runs before a create is stored.
	onCreate func()
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if r.onCreate != nil {
		r.onCreate()
	}
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("65f1c2a9e4b0a1b2c3d4%04x", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Save(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saves++
	clone := *p
	r.byID[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) seed(p domain.Product) *domain.Product {
	clone := p
	r.byID[p.ID] = &clone
	return &clone
}

// ---------------------------------------------------------------------------
// In-memory idempotency store
// ---------------------------------------------------------------------------

// keys maps an idempotency key to its product id; "" marks a reservation.
type stubIdempotency struct {
	mu          sync.Mutex
	keys        map[string]string
	reserveErr  error
	lookupErr   error
	rememberErr error
	releases    int

	// pendingSeen receives a signal when a lookup finds a reservation.
	pendingSeen chan struct{}
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string), pendingSeen: make(chan struct{}, 1)}
}

func (s *stubIdempotency) Reserve(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reserveErr != nil {
		return false, s.reserveErr
	}
	if _, exists := s.keys[key]; exists {
		return false, nil
	}
	s.keys[key] = ""
	return true, nil
}

func (s *stubIdempotency) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lookupErr != nil {
		return "", false, s.lookupErr
	}
	id, ok := s.keys[key]
	if ok && id == "" {
		select {
		case s.pendingSeen <- struct{}{}:
		default:
		}
	}
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, key, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rememberErr != nil {
		return s.rememberErr
	}
	s.keys[key] = productID
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releases++
	delete(s.keys, key)
	return nil
}

func (s *stubIdempotency) bound(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.keys[key]
	return id, ok
}

// ---------------------------------------------------------------------------
// In-memory account repository
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	accounts map[string]*domain.Account // keyed by role + ":" + id
	saveErr  error
	lastOpts ports.FindOptions
	saves    int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func accountKey(role domain.Role, id string) string {
	return string(role) + ":" + id
}

func (r *stubAccountRepo) add(a domain.Account) {
	clone := a
	r.accounts[accountKey(a.Role, a.ID)] = &clone
}

func (r *stubAccountRepo) FindByID(_ context.Context, role domain.Role, id string, opts ports.FindOptions) (*domain.Account, error) {
	r.lastOpts = opts
	a, ok := r.accounts[accountKey(role, id)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	if !opts.IncludeSensitive {
		clone.PasswordHash = ""
	}
	return &clone, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, role domain.Role, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Role == role && a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubAccountRepo) Save(_ context.Context, a *domain.Account) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	key := accountKey(a.Role, a.ID)
	if _, ok := r.accounts[key]; !ok {
		return errors.New("save: unknown account")
	}
	r.saves++
	clone := *a
	r.accounts[key] = &clone
	return nil
}

func (r *stubAccountRepo) hash(role domain.Role, id string) string {
	return r.accounts[accountKey(role, id)].PasswordHash
}
