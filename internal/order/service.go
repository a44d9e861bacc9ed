package order

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"github.com/xstarhost/rdp-store-backend/internal/notify"
	"github.com/xstarhost/rdp-store-backend/internal/payment"
)

var (
	ErrEmptyCart            = errors.New("cart cannot be empty")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrPaymentDeclined      = errors.New("payment processing failed")
	ErrInvalidStatus        = errors.New("invalid order status")
)

// statuses an admin may force an order into, independent of payment outcome
var overrideStatuses = map[string]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

// CartClearer empties a user's cart after a paid checkout.
type CartClearer interface {
	Clear(userID string) error
}

// Service runs the checkout state machine and fronts the order store.
type Service struct {
	repo       Repository
	carts      CartClearer
	strategies map[string]payment.Strategy
	notifier   notify.Notifier
}

func NewService(repo Repository, carts CartClearer, strategies map[string]payment.Strategy, notifier notify.Notifier) *Service {
	return &Service{repo: repo, carts: carts, strategies: strategies, notifier: notifier}
}

// Checkout creates a pending order from the cart snapshot, charges the chosen
// payment strategy and transitions the order:
//
//	pending -> completed  cart cleared, confirmation queued
//	pending -> failed     cart untouched so the user can retry
//
// The steps are separate store calls, not one transaction; a crash between
// them leaves the order in pending for an admin override.
func (s *Service) Checkout(userID, email string, items []Item, method string) (CheckoutResult, error) {
	if len(items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return CheckoutResult{}, ErrInvalidQuantity
		}
	}

	strategy, ok := s.strategies[method]
	if !ok {
		return CheckoutResult{}, ErrUnknownPaymentMethod
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	total = total.Round(2)

	snapshot := make([]Item, len(items))
	copy(snapshot, items)

	ord, err := s.repo.Create(Order{
		UserID:        userID,
		Total:         total,
		Status:        StatusPending,
		PaymentMethod: method,
		PaymentStatus: StatusPending,
		Items:         snapshot,
		CustomerEmail: email,
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	result, err := strategy.Charge(total, ord.ID)
	if err != nil || !result.Success {
		if _, uerr := s.repo.UpdateStatus(ord.ID, StatusFailed); uerr != nil {
			log.Printf("order %s: could not mark failed: %v", ord.ID, uerr)
		}
		return CheckoutResult{}, ErrPaymentDeclined
	}

	updated, err := s.repo.UpdatePayment(ord.ID, StatusCompleted, result.Status, result.PaymentID)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := s.carts.Clear(userID); err != nil {
		return CheckoutResult{}, err
	}

	if s.notifier != nil && email != "" {
		if err := s.notifier.OrderConfirmation(updated.ID, updated.Total.StringFixed(2), email); err != nil {
			log.Printf("order %s: confirmation not sent: %v", updated.ID, err)
		}
	}

	return CheckoutResult{Order: updated, CryptoAddress: result.CryptoAddress}, nil
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

func (s *Service) ListByUser(userID string) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

// OverrideStatus is the admin's unconditional transition, not driven by any
// payment result.
func (s *Service) OverrideStatus(id, status string) (Order, error) {
	if !overrideStatuses[status] {
		return Order{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(id, status)
}
