package product

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `id, name, description, price, price_inr, category, specifications, features, is_active, created_at, updated_at`

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		return Product{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Product{}, err
		}
		return Product{}, ErrNotFound
	}
	return scanProduct(rows)
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	specsJSON, err := json.Marshal(p.Specifications)
	if err != nil {
		return Product{}, err
	}
	now := time.Now().UTC()

	_, err = r.db.Exec(`INSERT INTO products (id, name, description, price, price_inr, category, specifications, features, is_active, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,TRUE,$9,$9)`,
		p.ID, p.Name, p.Description, p.Price, p.PriceINR, p.Category, specsJSON, pq.Array(p.Features), now)
	if err != nil {
		return Product{}, err
	}

	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

func (r *PostgresRepository) Archive(id string) error {
	_, err := r.db.Exec(`UPDATE products SET is_active = FALSE, updated_at = $1 WHERE id = $2`, time.Now().UTC(), id)
	return err
}

func scanProduct(rows *sql.Rows) (Product, error) {
	var p Product
	var specsJSON []byte
	if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.PriceINR, &p.Category,
		&specsJSON, pq.Array(&p.Features), &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return Product{}, err
	}
	if len(specsJSON) > 0 {
		if err := json.Unmarshal(specsJSON, &p.Specifications); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}
