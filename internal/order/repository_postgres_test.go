package order

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

var orderTestColumns = []string{
	"id", "user_id", "total", "status", "payment_method", "payment_status",
	"payment_id", "items", "customer_email", "created_at", "updated_at",
}

func TestCreate_DefaultsToPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(sqlmock.AnyArg(), "u1", sqlmock.AnyArg(), StatusPending, "razorpay", StatusPending,
			"", sqlmock.AnyArg(), "u1@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ord, err := repo.Create(Order{
		UserID:        "u1",
		Total:         decimal.RequireFromString("16.00"),
		PaymentMethod: "razorpay",
		Items:         []Item{{ProductID: "p1", ProductName: "Standard Plan", Price: decimal.RequireFromString("8.00"), Quantity: 2}},
		CustomerEmail: "u1@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.ID == "" {
		t.Fatal("expected a server-assigned id")
	}
	if ord.Status != StatusPending || ord.PaymentStatus != StatusPending {
		t.Fatalf("expected pending defaults, got %s/%s", ord.Status, ord.PaymentStatus)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET status =").
		WithArgs(StatusCompleted, sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.UpdateStatus("missing", StatusCompleted); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_DecodesItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now().UTC()
	itemsJSON := `[{"productId":"p1","productName":"Standard Plan","price":"8.00","quantity":2}]`
	rows := sqlmock.NewRows(orderTestColumns).
		AddRow("o1", "u1", "16.00", StatusCompleted, "razorpay", "paid", "razorpay_123", []byte(itemsJSON), "u1@example.com", now, now)
	mock.ExpectQuery("SELECT .* FROM orders WHERE id =").WithArgs("o1").WillReturnRows(rows)

	ord, err := repo.GetByID("o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.Total.StringFixed(2) != "16.00" {
		t.Fatalf("unexpected total %s", ord.Total.StringFixed(2))
	}
	if len(ord.Items) != 1 || ord.Items[0].Price.StringFixed(2) != "8.00" || ord.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", ord.Items)
	}
	if ord.PaymentID != "razorpay_123" {
		t.Fatalf("unexpected payment id %q", ord.PaymentID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
