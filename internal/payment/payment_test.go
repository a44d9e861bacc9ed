package payment

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRazorpayCharge(t *testing.T) {
	res, err := RazorpayStrategy{}.Charge(decimal.RequireFromString("16.00"), "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatal("expected success")
	}
	if !strings.HasPrefix(res.PaymentID, "razorpay_") {
		t.Fatalf("unexpected payment id %q", res.PaymentID)
	}
	if res.Status != "paid" {
		t.Fatalf("unexpected status %q", res.Status)
	}
	if res.CryptoAddress != "" {
		t.Fatalf("razorpay result should not carry a deposit address, got %q", res.CryptoAddress)
	}
}

func TestCryptoCharge(t *testing.T) {
	res, err := CryptoStrategy{}.Charge(decimal.RequireFromString("8.00"), "order-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatal("expected success")
	}
	if !strings.HasPrefix(res.PaymentID, "crypto_") {
		t.Fatalf("unexpected payment id %q", res.PaymentID)
	}
	if res.CryptoAddress == "" {
		t.Fatal("expected a deposit address")
	}
}

func TestDefaultsCoverBothMethods(t *testing.T) {
	strategies := Defaults()
	for _, method := range []string{MethodRazorpay, MethodCrypto} {
		if _, ok := strategies[method]; !ok {
			t.Fatalf("missing strategy for %q", method)
		}
	}
	if _, ok := strategies["paypal"]; ok {
		t.Fatal("unexpected strategy for unsupported method")
	}
}
