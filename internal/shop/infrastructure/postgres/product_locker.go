package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type ProductLocker struct{}

func NewProductLocker() *ProductLocker {
	return &ProductLocker{}
}

// LockProduct holds the row lock until the surrounding transaction commits
// or rolls back, serializing concurrent purchases of the same product.
func (pl *ProductLocker) LockProduct(ctx context.Context, querier database.Querier, productId int) (domain.Product, error) {
	lockProductSQL := `SELECT id, name, price, stock FROM products WHERE id = $1 FOR UPDATE`

	var product domain.Product
	err := querier.QueryRow(ctx, lockProductSQL, productId).Scan(&product.Id, &product.Name, &product.Price, &product.Stock)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d does not exist", productId)}
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}
