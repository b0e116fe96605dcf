package http

import (
	"net/http"
	"strconv"

	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const ProductIdKey = "id"

type createProductRequestBody struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
	Stock int             `json:"stock" binding:"gte=0"`
}

type ProductHandler struct {
	service domain.ProductService
}

func NewProductHandler(service domain.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productId, err := strconv.Atoi(c.Param(ProductIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "product id must be numeric"})
		return
	}

	product, err := h.service.GetProduct(c, productId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var body createProductRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	product, err := h.service.CreateProduct(c, domain.NewProduct{
		Name:  body.Name,
		Price: body.Price,
		Stock: body.Stock,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}
