package products

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophproducts/internal/dbx"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query := `INSERT INTO products (user_id, name, description) VALUES (?, ?, ?) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, p.UserID, p.Name, p.Description).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id, userID int64) (*models.Product, error) {
	query := `SELECT id, user_id, name, description FROM products WHERE id = ? AND user_id = ?`
	return scanProduct(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Product, error) {
	query := `SELECT id, user_id, name, description FROM products WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	return scanProducts(rows)
}

func (r *SQLiteRepository) Update(ctx context.Context, id, userID int64, upd models.ProductUpdate) (*models.Product, error) {
	query := `
		UPDATE products SET
			name = COALESCE(?, name),
			description = CASE WHEN ? THEN ? ELSE description END
		WHERE id = ? AND user_id = ?
		RETURNING id, user_id, name, description
	`
	row := r.db.QueryRowContext(ctx, query, upd.Name, upd.DescriptionSet, upd.Description, id, userID)
	return scanProduct(row)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}
