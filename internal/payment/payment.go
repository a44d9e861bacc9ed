package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MethodRazorpay = "razorpay"
	MethodCrypto   = "crypto"
)

// placeholder deposit address returned by the crypto stub
const cryptoDepositAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

var ErrUnknownMethod = errors.New("unknown payment method")

// Result is what a strategy reports back after charging.
type Result struct {
	Success       bool   `json:"success"`
	PaymentID     string `json:"paymentId"`
	CryptoAddress string `json:"cryptoAddress,omitempty"`
	Status        string `json:"status"`
}

// Strategy charges an amount for an order and returns a transaction
// identifier. Both implementations here are deterministic stubs; a real
// gateway integration would replace them and add timeout and idempotency-key
// handling.
type Strategy interface {
	Charge(amount decimal.Decimal, orderID string) (Result, error)
}

type RazorpayStrategy struct{}

func (RazorpayStrategy) Charge(amount decimal.Decimal, orderID string) (Result, error) {
	return Result{
		Success:   true,
		PaymentID: fmt.Sprintf("%s_%d", MethodRazorpay, time.Now().UnixMilli()),
		Status:    "paid",
	}, nil
}

type CryptoStrategy struct{}

func (CryptoStrategy) Charge(amount decimal.Decimal, orderID string) (Result, error) {
	return Result{
		Success:       true,
		PaymentID:     fmt.Sprintf("%s_%d", MethodCrypto, time.Now().UnixMilli()),
		CryptoAddress: cryptoDepositAddress,
		Status:        "paid",
	}, nil
}

// Defaults maps each supported method to its stub strategy.
func Defaults() map[string]Strategy {
	return map[string]Strategy{
		MethodRazorpay: RazorpayStrategy{},
		MethodCrypto:   CryptoStrategy{},
	}
}
