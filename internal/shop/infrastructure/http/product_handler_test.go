package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	shopmocks "github.com/SantiagoSpook/examen-AdminBD/gen/mocks/shop"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductHandler_GetProducts(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.ProductService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	expectedProducts := []domain.Product{
		{Id: 1, Name: "Laptop", Price: decimal.NewFromInt(1200), Stock: 4},
		{Id: 2, Name: "Mouse", Price: decimal.NewFromInt(25), Stock: 30},
	}

	tests := []testCase{
		{
			name:           "successful list",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				mockService := shopmocks.NewMockProductService(ctrl)
				mockService.EXPECT().
					ListProducts(gomock.Any()).
					Return(expectedProducts, nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response []domain.Product
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Len(t, response, 2)
				assert.Equal(t, expectedProducts[0].Name, response[0].Name)
				assert.True(t, expectedProducts[0].Price.Equal(response[0].Price))
			},
		},
		{
			name:           "internal_server_error",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				mockService := shopmocks.NewMockProductService(ctrl)
				mockService.EXPECT().
					ListProducts(gomock.Any()).
					Return(nil, assert.AnError)

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := NewProductHandler(mockService)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handler.GetProducts(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		productId      string
		expectedStatus int

		prepareFn func(t *testing.T, ctrl *gomock.Controller) domain.ProductService
	}

	tests := []testCase{
		{
			name:           "successful get",
			productId:      "3",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				mockService := shopmocks.NewMockProductService(ctrl)
				mockService.EXPECT().
					GetProduct(gomock.Any(), 3).
					Return(domain.Product{Id: 3, Name: "Keyboard", Price: decimal.NewFromInt(45), Stock: 10}, nil).
					Times(1)

				return mockService
			},
		},
		{
			name:           "non_numeric_id",
			productId:      "abc",
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				return shopmocks.NewMockProductService(ctrl)
			},
		},
		{
			name:           "product_not_found",
			productId:      "99",
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				mockService := shopmocks.NewMockProductService(ctrl)
				mockService.EXPECT().
					GetProduct(gomock.Any(), 99).
					Return(domain.Product{}, &domain.ProductNotFoundError{Msg: "product with id 99 does not exist"})

				return mockService
			},
		},
		{
			name:           "internal_server_error",
			productId:      "3",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				mockService := shopmocks.NewMockProductService(ctrl)
				mockService.EXPECT().
					GetProduct(gomock.Any(), 3).
					Return(domain.Product{}, assert.AnError)

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := NewProductHandler(mockService)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/products/"+tt.productId, nil)
			c.Params = gin.Params{{Key: ProductIdKey, Value: tt.productId}}

			handler.GetProduct(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.ProductService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	createdProduct := domain.Product{Id: 5, Name: "Monitor", Price: decimal.NewFromInt(300), Stock: 8}

	tests := []testCase{
		{
			name: "successful create",
			requestBody: createProductRequestBody{
				Name:  "Monitor",
				Price: decimal.NewFromInt(300),
				Stock: 8,
			},
			expectedStatus: http.StatusCreated,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				mockService := shopmocks.NewMockProductService(ctrl)
				mockService.EXPECT().
					CreateProduct(gomock.Any(), domain.NewProduct{Name: "Monitor", Price: decimal.NewFromInt(300), Stock: 8}).
					Return(createdProduct, nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response domain.Product
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, createdProduct.Id, response.Id)
				assert.True(t, createdProduct.Price.Equal(response.Price))
			},
		},
		{
			name: "missing_price",
			requestBody: map[string]interface{}{
				"name":  "Monitor",
				"stock": 8,
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				return shopmocks.NewMockProductService(ctrl)
			},
		},
		{
			name: "negative_stock",
			requestBody: map[string]interface{}{
				"name":  "Monitor",
				"price": 300,
				"stock": -1,
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				return shopmocks.NewMockProductService(ctrl)
			},
		},
		{
			name: "internal_server_error",
			requestBody: createProductRequestBody{
				Name:  "Monitor",
				Price: decimal.NewFromInt(300),
				Stock: 8,
			},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.ProductService {
				mockService := shopmocks.NewMockProductService(ctrl)
				mockService.EXPECT().
					CreateProduct(gomock.Any(), domain.NewProduct{Name: "Monitor", Price: decimal.NewFromInt(300), Stock: 8}).
					Return(domain.Product{}, assert.AnError)

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := NewProductHandler(mockService)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)

			bodyBytes, _ := json.Marshal(tt.requestBody)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateProduct(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
