package product

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var productTestColumns = []string{
	"id", "name", "description", "price", "price_inr", "category",
	"specifications", "features", "is_active", "created_at", "updated_at",
}

func TestList_DecodesRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(productTestColumns).
		AddRow("p1", "Low Plan", "basic", "3.00", "220.00", "rdp", []byte(`{"ram":"2GB"}`), `{"24/7 Support","Full Admin Access"}`, true, now, now).
		AddRow("p2", "Basic Plan", "standard", "6.00", "440.00", "rdp", []byte(`{"ram":"4GB"}`), `{"24/7 Support"}`, true, now, now)
	mock.ExpectQuery("SELECT .* FROM products WHERE is_active = TRUE").WillReturnRows(rows)

	all, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].Name != "Low Plan" || all[0].Price.StringFixed(2) != "3.00" {
		t.Fatalf("unexpected first product %+v", all[0])
	}
	if all[0].Specifications["ram"] != "2GB" {
		t.Fatalf("expected specifications decoded, got %+v", all[0].Specifications)
	}
	if len(all[0].Features) != 2 || all[0].Features[0] != "24/7 Support" {
		t.Fatalf("expected features decoded, got %+v", all[0].Features)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT .* FROM products WHERE id =").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(productTestColumns))

	if _, err := repo.GetByID("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestArchive_FlipsFlag(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE products SET is_active = FALSE").
		WithArgs(sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Archive("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
