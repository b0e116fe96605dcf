package postgres

import (
	"context"
	"fmt"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
)

type StockDecrementer struct{}

func NewStockDecrementer() *StockDecrementer {
	return &StockDecrementer{}
}

func (sd *StockDecrementer) DecrementStock(ctx context.Context, executor database.Executor, productId int, quantity int) error {
	decrementSQL := `UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1`

	tag, err := executor.Exec(ctx, decrementSQL, quantity, productId)
	if err != nil {
		return fmt.Errorf("failed to decrement stock for product %d: %w", productId, err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientStockError{Msg: fmt.Sprintf("product %d does not have %d in stock", productId, quantity)}
	}

	return nil
}
