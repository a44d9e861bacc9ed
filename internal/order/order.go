package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
)

// Item is one frozen line of an order snapshot. Price and name are captured
// at checkout and never re-read from the catalog.
type Item struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Order is the append-only record of a purchase. Items and Total never change
// after creation; only status fields move.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentID     string          `json:"paymentId,omitempty"`
	Items         []Item          `json:"items"`
	CustomerEmail string          `json:"customerEmail"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CheckoutResult is the enriched order returned to the client after a
// successful checkout.
type CheckoutResult struct {
	Order
	CryptoAddress string `json:"cryptoAddress,omitempty"`
}
