package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/dmitrijs2005/gophproducts/internal/server/auth"
	"github.com/dmitrijs2005/gophproducts/internal/server/config"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
	"github.com/dmitrijs2005/gophproducts/internal/server/repositories/repomanager"
)

// TokenValidator resolves an Authorization header value to a live user.
type TokenValidator struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
}

func NewTokenValidator(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TokenValidator {
	return &TokenValidator{db: db, repomanager: m, jwtSecret: []byte(cfg.SecretKey)}
}

// Authenticate verifies the token in header and loads its user.
// It returns ErrMissingToken, ErrInvalidToken, ErrTokenExpired or
// ErrUserNotFound from the common package.
func (v *TokenValidator) Authenticate(ctx context.Context, header string) (*models.User, error) {
	token := stripBearer(strings.TrimSpace(header))
	if token == "" {
		return nil, common.ErrMissingToken
	}

	userID, err := auth.GetUserIDFromToken(token, v.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := v.repomanager.Users(v.db).GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return user, nil
}

// stripBearer removes a case-insensitive "Bearer " prefix if present.
// A bare scheme with no token yields "".
func stripBearer(v string) string {
	if strings.EqualFold(v, common.BearerScheme) {
		return ""
	}
	prefix := common.BearerScheme + " "
	if len(v) >= len(prefix) && strings.EqualFold(v[:len(prefix)], prefix) {
		return strings.TrimSpace(v[len(prefix):])
	}
	return v
}
