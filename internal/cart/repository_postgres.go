package cart

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

const listCartQuery = `
        SELECT c.id, c.user_id, c.product_id, c.quantity, c.created_at,
               p.id, p.name, p.description, p.price, p.price_inr, p.category, p.specifications, p.features, p.is_active, p.created_at, p.updated_at
        FROM cart_items c
        INNER JOIN products p ON p.id = c.product_id
        WHERE c.user_id = $1
        ORDER BY c.created_at
    `

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(userID string) ([]ItemWithProduct, error) {
	rows, err := r.db.Query(listCartQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ItemWithProduct, 0)
	for rows.Next() {
		var it ItemWithProduct
		var specsJSON []byte
		p := &it.Product
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.PriceINR, &p.Category,
			&specsJSON, pq.Array(&p.Features), &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if len(specsJSON) > 0 {
			if err := json.Unmarshal(specsJSON, &p.Specifications); err != nil {
				return nil, err
			}
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Add(userID, productID string, quantity int) (Item, error) {
	// referential check up front so a bad product id maps to a clean error
	// instead of a foreign key violation
	var exists bool
	if err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err != nil {
		return Item{}, err
	}
	if !exists {
		return Item{}, ErrProductNotFound
	}

	var it Item
	err := r.db.QueryRow(`INSERT INTO cart_items (id, user_id, product_id, quantity, created_at)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
        RETURNING id, user_id, product_id, quantity, created_at`,
		uuid.NewString(), userID, productID, quantity, time.Now().UTC()).Scan(
		&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) Remove(userID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	return err
}

func (r *PostgresRepository) Clear(userID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
