package domain

import (
	"context"
	"fmt"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/shopspring/decimal"
)

const MaxPurchaseItems = 5

// MaxPurchaseTotal is the business ceiling for a single purchase.
var MaxPurchaseTotal = decimal.NewFromInt(3500)

type LineItem struct {
	ProductId int
	Quantity  int
	Price     decimal.Decimal
}

type PurchaseRequest struct {
	UserId  int
	Status  string
	Details []LineItem
}

type PurchaseDetail struct {
	ProductId int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type PurchaseReceipt struct {
	PurchaseId int              `json:"purchase_id"`
	UserId     int              `json:"user_id"`
	Total      decimal.Decimal  `json:"total"`
	Status     string           `json:"status"`
	Details    []PurchaseDetail `json:"details"`
}

func (pr PurchaseRequest) Validate() error {
	if pr.UserId == 0 {
		return &InvalidArgumentsError{Msg: "user_id is required"}
	}

	if pr.Status == "" {
		return &InvalidArgumentsError{Msg: "status is required"}
	}

	if len(pr.Details) == 0 {
		return &InvalidArgumentsError{Msg: "details must contain at least one item"}
	}

	if len(pr.Details) > MaxPurchaseItems {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("details must contain at most %d items", MaxPurchaseItems)}
	}

	return nil
}

func (li LineItem) Validate() error {
	if li.ProductId == 0 {
		return &InvalidArgumentsError{Msg: "line item is missing product_id"}
	}

	if li.Quantity <= 0 {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("line item for product %d needs a positive quantity", li.ProductId)}
	}

	if !li.Price.IsPositive() {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("line item for product %d needs a positive price", li.ProductId)}
	}

	return nil
}

// Subtotal is always derived server-side; anything the client sends for it
// is discarded.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type PurchaseRecorder interface {
	InsertPurchase(ctx context.Context, querier database.Querier, userId int, total decimal.Decimal, status string) (int, error)
	InsertPurchaseDetail(ctx context.Context, executor database.Executor, purchaseId int, detail PurchaseDetail) error
}
