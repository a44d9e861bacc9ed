package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a rentable plan. Rows are never hard-deleted: archiving flips
// IsActive so cart lines and order snapshots keep a valid reference.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	PriceINR       decimal.Decimal   `json:"priceINR"`
	Category       string            `json:"category"`
	Specifications map[string]string `json:"specifications"`
	Features       []string          `json:"features"`
	IsActive       bool              `json:"isActive"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// AllowedCategories contains the supported plan categories.
var AllowedCategories = []string{
	"rdp",
	"vps",
}
