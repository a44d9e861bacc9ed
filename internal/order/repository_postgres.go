package order

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `id, user_id, total, status, payment_method, payment_status, payment_id, items, customer_email, created_at, updated_at`

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	if ord.ID == "" {
		ord.ID = uuid.NewString()
	}
	if ord.Status == "" {
		ord.Status = StatusPending
	}
	if ord.PaymentStatus == "" {
		ord.PaymentStatus = StatusPending
	}
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	now := time.Now().UTC()

	_, err = r.db.Exec(`INSERT INTO orders (id, user_id, total, status, payment_method, payment_status, payment_id, items, customer_email, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$10)`,
		ord.ID, ord.UserID, ord.Total, ord.Status, ord.PaymentMethod, ord.PaymentStatus, ord.PaymentID, itemsJSON, ord.CustomerEmail, now)
	if err != nil {
		return Order{}, err
	}

	ord.CreatedAt = now
	ord.UpdatedAt = now
	return ord, nil
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Order{}, err
		}
		return Order{}, ErrNotFound
	}
	return scanOrder(rows)
}

func (r *PostgresRepository) List() ([]Order, error) {
	return r.queryOrders(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
}

func (r *PostgresRepository) ListByUser(userID string) ([]Order, error) {
	return r.queryOrders(`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresRepository) UpdateStatus(id, status string) (Order, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) UpdatePayment(id, status, paymentStatus, paymentID string) (Order, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = $1, payment_status = $2, payment_id = $3, updated_at = $4 WHERE id = $5`,
		status, paymentStatus, paymentID, time.Now().UTC(), id)
	if err != nil {
		return Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) queryOrders(query string, args ...any) ([]Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

func scanOrder(rows *sql.Rows) (Order, error) {
	var ord Order
	var itemsJSON []byte
	var paymentID sql.NullString
	if err := rows.Scan(&ord.ID, &ord.UserID, &ord.Total, &ord.Status, &ord.PaymentMethod,
		&ord.PaymentStatus, &paymentID, &itemsJSON, &ord.CustomerEmail, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
		return Order{}, err
	}
	if paymentID.Valid {
		ord.PaymentID = paymentID.String
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
			return Order{}, err
		}
	}
	return ord, nil
}
