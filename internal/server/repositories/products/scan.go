package products

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*models.Product, error) {
	p := &models.Product{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]*models.Product, error) {
	defer rows.Close()

	result := make([]*models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
