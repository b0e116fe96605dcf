package application

import (
	"testing"

	shopmocks "github.com/SantiagoSpook/examen-AdminBD/gen/mocks/shop"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductsCase_GetProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		productId int

		prepareFn func(t *testing.T, productsRepository *shopmocks.MockProductsRepository)

		expectedProduct domain.Product
		expectedErr     error
	}

	cup := domain.Product{Id: 10, Name: "cup", Price: decimal.NewFromInt(100), Stock: 5}

	tests := []testCase{
		{
			name:      "product found",
			productId: 10,
			prepareFn: func(t *testing.T, productsRepository *shopmocks.MockProductsRepository) {
				productsRepository.EXPECT().GetProduct(gomock.Any(), 10).
					Return(cup, nil)
			},
			expectedProduct: cup,
			expectedErr:     nil,
		},
		{
			name:      "product not found",
			productId: 404,
			prepareFn: func(t *testing.T, productsRepository *shopmocks.MockProductsRepository) {
				productsRepository.EXPECT().GetProduct(gomock.Any(), 404).
					Return(domain.Product{}, &domain.ProductNotFoundError{Msg: "product with id 404 does not exist"})
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productsRepository := shopmocks.NewMockProductsRepository(ctrl)
			tt.prepareFn(t, productsRepository)

			productsCase := NewProductsCase(productsRepository)
			product, err := productsCase.GetProduct(t.Context(), tt.productId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProduct, product)
			}
		})
	}
}

func TestProductsCase_CreateProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		newProduct domain.NewProduct

		prepareFn func(t *testing.T, productsRepository *shopmocks.MockProductsRepository)

		expectedErr error
	}

	tests := []testCase{
		{
			name:       "successful creation",
			newProduct: domain.NewProduct{Name: "cup", Price: decimal.NewFromInt(100), Stock: 5},
			prepareFn: func(t *testing.T, productsRepository *shopmocks.MockProductsRepository) {
				productsRepository.EXPECT().CreateProduct(gomock.Any(), domain.NewProduct{Name: "cup", Price: decimal.NewFromInt(100), Stock: 5}).
					Return(domain.Product{Id: 10, Name: "cup", Price: decimal.NewFromInt(100), Stock: 5}, nil)
			},
			expectedErr: nil,
		},
		{
			name:        "missing name",
			newProduct:  domain.NewProduct{Price: decimal.NewFromInt(100), Stock: 5},
			prepareFn:   func(t *testing.T, productsRepository *shopmocks.MockProductsRepository) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "non-positive price",
			newProduct:  domain.NewProduct{Name: "cup", Stock: 5},
			prepareFn:   func(t *testing.T, productsRepository *shopmocks.MockProductsRepository) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "negative stock",
			newProduct:  domain.NewProduct{Name: "cup", Price: decimal.NewFromInt(100), Stock: -1},
			prepareFn:   func(t *testing.T, productsRepository *shopmocks.MockProductsRepository) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productsRepository := shopmocks.NewMockProductsRepository(ctrl)
			tt.prepareFn(t, productsRepository)

			productsCase := NewProductsCase(productsRepository)
			_, err := productsCase.CreateProduct(t.Context(), tt.newProduct)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
