package cart

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(userID string) ([]ItemWithProduct, error) {
	return s.repo.List(userID)
}

// Add merges by increment: quantity defaults to 1 when omitted.
func (s *Service) Add(userID, productID string, quantity int) (Item, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return Item{}, ErrInvalidQuantity
	}
	return s.repo.Add(userID, productID, quantity)
}

func (s *Service) Remove(userID, productID string) error {
	return s.repo.Remove(userID, productID)
}

func (s *Service) Clear(userID string) error {
	return s.repo.Clear(userID)
}
