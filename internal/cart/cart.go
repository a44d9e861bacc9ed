package cart

import (
	"time"

	"github.com/xstarhost/rdp-store-backend/internal/product"
)

// Item is one (user, product) line. At most one line exists per pair; a
// repeat add increments Quantity instead of inserting a second row.
type Item struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemWithProduct is the joined read used by the cart page: each line carries
// the full product record, archived or not.
type ItemWithProduct struct {
	Item
	Product product.Product `json:"product"`
}
