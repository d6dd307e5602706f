package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
	"github.com/dmitrijs2005/gophproducts/internal/server/repositories/repomanager"
)

// ProductService implements ownership-scoped product operations. The owner
// is always the authenticated user; products of other users are reported
// as common.ErrorNotFound.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager) *ProductService {
	return &ProductService{db: db, repomanager: m}
}

func (s *ProductService) Create(ctx context.Context, owner *models.User, name string, description *string) (*models.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.ErrorMissingField
	}

	p, err := s.repomanager.Products(s.db).Create(ctx, &models.Product{
		UserID:      owner.ID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context, owner *models.User) ([]*models.Product, error) {
	list, err := s.repomanager.Products(s.db).ListByUser(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return list, nil
}

func (s *ProductService) Get(ctx context.Context, owner *models.User, id int64) (*models.Product, error) {
	p, err := s.repomanager.Products(s.db).GetByID(ctx, id, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("error getting product: %w", err)
	}
	return p, nil
}

// Update applies a partial update. An explicitly empty name is rejected
// before anything is written.
func (s *ProductService) Update(ctx context.Context, owner *models.User, id int64, upd models.ProductUpdate) (*models.Product, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, common.ErrorMissingField
	}

	p, err := s.repomanager.Products(s.db).Update(ctx, id, owner.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, owner *models.User, id int64) error {
	if err := s.repomanager.Products(s.db).Delete(ctx, id, owner.ID); err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	return nil
}
