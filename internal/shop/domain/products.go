package domain

import (
	"context"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type Product struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type NewProduct struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

type ProductsRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, productId int) (Product, error)
	CreateProduct(ctx context.Context, newProduct NewProduct) (Product, error)
}

// ProductLocker reads a product row with a row-level lock held until the
// surrounding transaction ends, so the stock check and the decrement cannot
// interleave with a concurrent purchase of the same product.
type ProductLocker interface {
	LockProduct(ctx context.Context, querier database.Querier, productId int) (Product, error)
}

type StockDecrementer interface {
	DecrementStock(ctx context.Context, executor database.Executor, productId int, quantity int) error
}
