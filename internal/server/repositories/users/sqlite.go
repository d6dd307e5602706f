package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/dmitrijs2005/gophproducts/internal/dbx"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
)

// SQLiteRepository is the embedded-database implementation of Repository.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, user.UserName, user.PasswordHash).Scan(&user.ID); err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorDuplicateHandle
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *SQLiteRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, userName))
}

func (r *SQLiteRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}
