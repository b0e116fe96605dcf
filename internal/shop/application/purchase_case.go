package application

import (
	"context"
	"fmt"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type PurchaseCase struct {
	userFinder       domain.UserFinder
	productLocker    domain.ProductLocker
	purchaseRecorder domain.PurchaseRecorder
	stockDecrementer domain.StockDecrementer
	txManager        database.TxManager
}

func NewPurchaseCase(
	userFinder domain.UserFinder,
	productLocker domain.ProductLocker,
	purchaseRecorder domain.PurchaseRecorder,
	stockDecrementer domain.StockDecrementer,
	txManager database.TxManager,
) *PurchaseCase {
	return &PurchaseCase{
		userFinder:       userFinder,
		productLocker:    productLocker,
		purchaseRecorder: purchaseRecorder,
		stockDecrementer: stockDecrementer,
		txManager:        txManager,
	}
}

// PlacePurchase validates and commits a purchase as one atomic unit: either
// the purchase row, its detail rows and the stock decrements all land, or
// the store stays untouched.
func (pc *PurchaseCase) PlacePurchase(ctx context.Context, request domain.PurchaseRequest) (domain.PurchaseReceipt, error) {
	if err := request.Validate(); err != nil {
		return domain.PurchaseReceipt{}, err
	}

	var receipt domain.PurchaseReceipt

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		if _, err := pc.userFinder.FindUser(ctx, executor, request.UserId); err != nil {
			return err
		}

		total := decimal.Zero
		details := make([]domain.PurchaseDetail, 0, len(request.Details))

		for _, item := range request.Details {
			if err := item.Validate(); err != nil {
				return err
			}

			product, err := pc.productLocker.LockProduct(ctx, executor, item.ProductId)
			if err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return &domain.InsufficientStockError{
					Msg: fmt.Sprintf("product %d has only %d in stock", product.Id, product.Stock),
				}
			}

			subtotal := item.Subtotal()
			total = total.Add(subtotal)

			details = append(details, domain.PurchaseDetail{
				ProductId: item.ProductId,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Subtotal:  subtotal,
			})
		}

		if total.GreaterThan(domain.MaxPurchaseTotal) {
			return &domain.PurchaseLimitError{
				Msg: fmt.Sprintf("purchase total %s exceeds the %s limit", total, domain.MaxPurchaseTotal),
			}
		}

		purchaseId, err := pc.purchaseRecorder.InsertPurchase(ctx, executor, request.UserId, total, request.Status)
		if err != nil {
			return err
		}

		for _, detail := range details {
			if err := pc.purchaseRecorder.InsertPurchaseDetail(ctx, executor, purchaseId, detail); err != nil {
				return err
			}

			if err := pc.stockDecrementer.DecrementStock(ctx, executor, detail.ProductId, detail.Quantity); err != nil {
				return err
			}
		}

		receipt = domain.PurchaseReceipt{
			PurchaseId: purchaseId,
			UserId:     request.UserId,
			Total:      total,
			Status:     request.Status,
			Details:    details,
		}

		return nil
	})
	if err != nil {
		return domain.PurchaseReceipt{}, err
	}

	return receipt, nil
}
