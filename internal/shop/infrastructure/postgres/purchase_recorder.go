package postgres

import (
	"context"
	"fmt"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type PurchaseRecorder struct{}

func NewPurchaseRecorder() *PurchaseRecorder {
	return &PurchaseRecorder{}
}

func (pr *PurchaseRecorder) InsertPurchase(ctx context.Context, querier database.Querier, userId int, total decimal.Decimal, status string) (int, error) {
	insertPurchaseSQL := `INSERT INTO purchases (user_id, total, status) VALUES ($1, $2, $3) RETURNING id`

	var purchaseId int
	err := querier.QueryRow(ctx, insertPurchaseSQL, userId, total, status).Scan(&purchaseId)
	if err != nil {
		return 0, fmt.Errorf("failed to insert purchase record: %w", err)
	}

	return purchaseId, nil
}

func (pr *PurchaseRecorder) InsertPurchaseDetail(ctx context.Context, executor database.Executor, purchaseId int, detail domain.PurchaseDetail) error {
	insertDetailSQL := `INSERT INTO purchase_details (purchase_id, product_id, quantity, price, subtotal)
VALUES ($1, $2, $3, $4, $5)`

	_, err := executor.Exec(ctx, insertDetailSQL, purchaseId, detail.ProductId, detail.Quantity, detail.Price, detail.Subtotal)
	if err != nil {
		return fmt.Errorf("failed to insert purchase detail record: %w", err)
	}

	return nil
}
