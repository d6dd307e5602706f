package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/dmitrijs2005/gophproducts/internal/dbx"
	"github.com/dmitrijs2005/gophproducts/internal/server/config"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
	"github.com/dmitrijs2005/gophproducts/internal/server/repositories/products"
	"github.com/dmitrijs2005/gophproducts/internal/server/repositories/users"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
}

type fakeUsersRepo struct {
	byName map[string]*models.User
	byID   map[int64]*models.User
	nextID int64

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}, byID: map[int64]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorDuplicateHandle
	}
	f.nextID++
	u.ID = f.nextID
	f.byName[u.UserName] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeProductsRepo struct {
	created *models.Product
	upd     *models.ProductUpdate
	err     error
}

func (f *fakeProductsRepo) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p.ID = 1
	f.created = p
	return p, nil
}

func (f *fakeProductsRepo) GetByID(ctx context.Context, id, userID int64) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{ID: id, UserID: userID}, nil
}

func (f *fakeProductsRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*models.Product{}, nil
}

func (f *fakeProductsRepo) Update(ctx context.Context, id, userID int64, upd models.ProductUpdate) (*models.Product, error) {
	f.upd = &upd
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{ID: id, UserID: userID}, nil
}

func (f *fakeProductsRepo) Delete(ctx context.Context, id, userID int64) error {
	return f.err
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakeProductsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Products(db dbx.DBTX) products.Repository     { return m.p }
