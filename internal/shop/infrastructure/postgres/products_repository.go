package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type ProductsRepository struct {
	querier database.Querier
}

func NewProductsRepository(querier database.Querier) *ProductsRepository {
	return &ProductsRepository{
		querier: querier,
	}
}

func (pr *ProductsRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	listProductsSQL := `SELECT id, name, price, stock FROM products ORDER BY id`

	rows, err := pr.querier.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		err = rows.Scan(&product.Id, &product.Name, &product.Price, &product.Stock)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}

	return products, nil
}

func (pr *ProductsRepository) GetProduct(ctx context.Context, productId int) (domain.Product, error) {
	findProductSQL := `SELECT id, name, price, stock FROM products WHERE id = $1`

	var product domain.Product
	err := pr.querier.QueryRow(ctx, findProductSQL, productId).Scan(&product.Id, &product.Name, &product.Price, &product.Stock)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d does not exist", productId)}
		}

		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (pr *ProductsRepository) CreateProduct(ctx context.Context, newProduct domain.NewProduct) (domain.Product, error) {
	creationSQL := `INSERT INTO products (name, price, stock) VALUES ($1, $2, $3) RETURNING id, name, price, stock`

	var product domain.Product
	row := pr.querier.QueryRow(ctx, creationSQL, newProduct.Name, newProduct.Price, newProduct.Stock)
	err := row.Scan(&product.Id, &product.Name, &product.Price, &product.Stock)

	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	return product, nil
}
