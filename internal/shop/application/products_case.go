package application

import (
	"context"

	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
)

type ProductsCase struct {
	productsRepository domain.ProductsRepository
}

func NewProductsCase(productsRepository domain.ProductsRepository) *ProductsCase {
	return &ProductsCase{
		productsRepository: productsRepository,
	}
}

func (pc *ProductsCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return pc.productsRepository.ListProducts(ctx)
}

func (pc *ProductsCase) GetProduct(ctx context.Context, productId int) (domain.Product, error) {
	return pc.productsRepository.GetProduct(ctx, productId)
}

func (pc *ProductsCase) CreateProduct(ctx context.Context, newProduct domain.NewProduct) (domain.Product, error) {
	if newProduct.Name == "" {
		return domain.Product{}, &domain.InvalidArgumentsError{Msg: "name is required"}
	}

	if !newProduct.Price.IsPositive() {
		return domain.Product{}, &domain.InvalidArgumentsError{Msg: "price must be positive"}
	}

	if newProduct.Stock < 0 {
		return domain.Product{}, &domain.InvalidArgumentsError{Msg: "stock cannot be negative"}
	}

	return pc.productsRepository.CreateProduct(ctx, newProduct)
}
