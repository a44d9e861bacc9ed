package notify

import "log"

// Notifier delivers an order confirmation to the customer. Delivery is best
// effort: checkout logs failures and never rolls back on them.
type Notifier interface {
	OrderConfirmation(orderID, total, email string) error
}

// LogNotifier is the fallback when SMTP is not configured.
type LogNotifier struct{}

func (LogNotifier) OrderConfirmation(orderID, total, email string) error {
	log.Printf("order confirmation for %s (total %s) to %s", orderID, total, email)
	return nil
}
