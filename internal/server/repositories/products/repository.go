// Package products persists products. Every lookup and mutation is
// filtered by owner, so a product belonging to another user behaves
// exactly like a missing one (common.ErrorNotFound).
package products

import (
	"context"

	"github.com/dmitrijs2005/gophproducts/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Product, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Product, error)
	Update(ctx context.Context, id, userID int64, upd models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id, userID int64) error
}
