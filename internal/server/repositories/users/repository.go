// Package users persists registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophproducts/internal/server/models"
)

// Repository stores users. Lookups report common.ErrorNotFound for unknown
// users and Create reports common.ErrorDuplicateHandle for a taken name.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}
