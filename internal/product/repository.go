package product

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	// List returns active products only, oldest first.
	List() ([]Product, error)
	// GetByID returns the product whether or not it is archived.
	GetByID(id string) (Product, error)
	Create(p Product) (Product, error)
	// Archive soft-deletes: flips IsActive, never removes the row.
	Archive(id string) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.IsActive = true
		r.storage = append(r.storage, p)
	}
	return r
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.storage))
	for _, p := range r.storage {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Archive(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].IsActive = false
			r.storage[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return nil
}

// UpdatePrice mutates a product's price in place. It exists so tests can
// change the catalog underneath an order snapshot.
func (r *InMemoryRepository) UpdatePrice(id string, price decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Price = price
			r.storage[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}
