package product

import "github.com/shopspring/decimal"

// DefaultPlans is the stock plan catalog installed by the admin seed endpoint.
func DefaultPlans() []Product {
	return []Product{
		{
			Name:        "Low Plan",
			Description: "Perfect for basic browsing, automation, and light tasks",
			Price:       decimal.RequireFromString("3.00"),
			PriceINR:    decimal.RequireFromString("220.00"),
			Category:    "rdp",
			Specifications: map[string]string{
				"ram":     "2GB",
				"cpu":     "2 CPU Cores",
				"storage": "40GB SSD",
				"os":      "Windows 10/11",
			},
			Features: []string{"24/7 Support", "Full Admin Access", "Private & Secure", "30 Days Warranty"},
		},
		{
			Name:        "Basic Plan",
			Description: "Great for YouTube, coding, and standard automation tasks",
			Price:       decimal.RequireFromString("6.00"),
			PriceINR:    decimal.RequireFromString("440.00"),
			Category:    "rdp",
			Specifications: map[string]string{
				"ram":     "4GB",
				"cpu":     "2 CPU Cores",
				"storage": "50GB SSD",
				"os":      "Windows 10/11",
			},
			Features: []string{"24/7 Support", "Full Admin Access", "Private & Secure", "30 Days Warranty"},
		},
		{
			Name:        "Standard Plan",
			Description: "Perfect for trading, editing, and advanced automation",
			Price:       decimal.RequireFromString("8.00"),
			PriceINR:    decimal.RequireFromString("700.00"),
			Category:    "rdp",
			Specifications: map[string]string{
				"ram":     "8GB",
				"cpu":     "4 CPU Cores",
				"storage": "100GB SSD",
				"os":      "Windows 10/11",
			},
			Features: []string{"24/7 Support", "Full Admin Access", "High Speed", "30 Days Warranty"},
		},
		{
			Name:        "Pro Plan",
			Description: "High-performance solution for demanding applications",
			Price:       decimal.RequireFromString("13.00"),
			PriceINR:    decimal.RequireFromString("1000.00"),
			Category:    "rdp",
			Specifications: map[string]string{
				"ram":     "16GB",
				"cpu":     "4 CPU Cores",
				"storage": "120GB SSD",
				"os":      "Windows 10/11",
			},
			Features: []string{"24/7 Support", "Full Admin Access", "High Speed", "30 Days Warranty"},
		},
		{
			Name:        "Pro Max Plan",
			Description: "Premium performance for professional workflows",
			Price:       decimal.RequireFromString("23.00"),
			PriceINR:    decimal.RequireFromString("2000.00"),
			Category:    "rdp",
			Specifications: map[string]string{
				"ram":     "32GB",
				"cpu":     "8 CPU Cores",
				"storage": "120GB SSD",
				"os":      "Windows 10/11",
			},
			Features: []string{"24/7 Support", "Full Admin Access", "High Speed", "30 Days Warranty"},
		},
		{
			Name:        "Ultra Plan",
			Description: "Ultimate power for heavy-duty professional tasks",
			Price:       decimal.RequireFromString("43.00"),
			PriceINR:    decimal.RequireFromString("4000.00"),
			Category:    "rdp",
			Specifications: map[string]string{
				"ram":     "64GB",
				"cpu":     "16 CPU Cores",
				"storage": "250GB SSD",
				"os":      "Windows 10/11",
			},
			Features: []string{"24/7 Support", "Full Admin Access", "Super Performance", "30 Days Warranty"},
		},
	}
}
