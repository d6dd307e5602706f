package products

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophproducts/internal/dbx"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
)

// PostgresRepository implements product storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts p and fills in its generated ID.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query := `
		INSERT INTO products (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, p.UserID, p.Name, p.Description).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID int64) (*models.Product, error) {
	query := `
		SELECT id, user_id, name, description FROM products
		WHERE id = $1 AND user_id = $2
	`
	return scanProduct(r.db.QueryRowContext(ctx, query, id, userID))
}

// ListByUser returns the owner's products ordered by ID. The slice is
// empty, not nil, when the user has none.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Product, error) {
	query := `
		SELECT id, user_id, name, description FROM products
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	return scanProducts(rows)
}

// Update applies upd in one statement and returns the stored row.
func (r *PostgresRepository) Update(ctx context.Context, id, userID int64, upd models.ProductUpdate) (*models.Product, error) {
	query := `
		UPDATE products SET
			name = COALESCE($1, name),
			description = CASE WHEN $2::boolean THEN $3 ELSE description END
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, name, description
	`
	row := r.db.QueryRowContext(ctx, query, upd.Name, upd.DescriptionSet, upd.Description, id, userID)
	return scanProduct(row)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM products WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}
