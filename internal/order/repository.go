package order

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence for orders. Items and totals are taken
// verbatim from the caller; the store never recomputes them.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id string) (Order, error)
	// List returns every order, newest first.
	List() ([]Order, error)
	ListByUser(userID string) ([]Order, error)
	UpdateStatus(id, status string) (Order, error)
	// UpdatePayment records the payment outcome alongside the status change.
	UpdatePayment(id, status, paymentStatus, paymentID string) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make([]Order, 0)}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ord.ID == "" {
		ord.ID = uuid.NewString()
	}
	if ord.Status == "" {
		ord.Status = StatusPending
	}
	if ord.PaymentStatus == "" {
		ord.PaymentStatus = StatusPending
	}
	now := time.Now().UTC()
	ord.CreatedAt = now
	ord.UpdatedAt = now
	// snapshot copy so callers cannot mutate stored items afterwards
	items := make([]Item, len(ord.Items))
	copy(items, ord.Items)
	ord.Items = items
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return cloneOrder(ord), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) List() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, cloneOrder(r.orders[i]))
	}
	return out, nil
}

func (r *InMemoryRepository) ListByUser(userID string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, cloneOrder(r.orders[i]))
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id, status string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now().UTC()
			return cloneOrder(r.orders[i]), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) UpdatePayment(id, status, paymentStatus, paymentID string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].PaymentStatus = paymentStatus
			r.orders[i].PaymentID = paymentID
			r.orders[i].UpdatedAt = time.Now().UTC()
			return cloneOrder(r.orders[i]), nil
		}
	}
	return Order{}, ErrNotFound
}

func cloneOrder(ord Order) Order {
	items := make([]Item, len(ord.Items))
	copy(items, ord.Items)
	ord.Items = items
	return ord
}
