package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xstarhost/rdp-store-backend/internal/product"
)

var (
	// ErrProductNotFound means Add referenced a product id with no catalog row.
	ErrProductNotFound = errors.New("product not found")
)

type Repository interface {
	List(userID string) ([]ItemWithProduct, error)
	// Add inserts a line or increments the existing one for (userID, productID).
	Add(userID, productID string, quantity int) (Item, error)
	// Remove deletes the matching line; absent lines are a no-op.
	Remove(userID, productID string) error
	Clear(userID string) error
}

// InMemoryRepository joins against the given catalog and is used for tests
// and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	items   []Item
	catalog product.Repository
}

func NewInMemoryRepository(catalog product.Repository) *InMemoryRepository {
	return &InMemoryRepository{items: make([]Item, 0), catalog: catalog}
}

func (r *InMemoryRepository) List(userID string) ([]ItemWithProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ItemWithProduct, 0)
	for _, it := range r.items {
		if it.UserID != userID {
			continue
		}
		p, err := r.catalog.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		out = append(out, ItemWithProduct{Item: it, Product: p})
	}
	return out, nil
}

func (r *InMemoryRepository) Add(userID, productID string, quantity int) (Item, error) {
	if _, err := r.catalog.GetByID(productID); err != nil {
		return Item{}, ErrProductNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].UserID == userID && r.items[i].ProductID == productID {
			r.items[i].Quantity += quantity
			return r.items[i], nil
		}
	}

	it := Item{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}
	r.items = append(r.items, it)
	return it, nil
}

func (r *InMemoryRepository) Remove(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].UserID == userID && r.items[i].ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, it := range r.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}
