package http

import (
	"net/http"

	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// The body carries no subtotal field on purpose: subtotals are always
// recomputed server-side from price and quantity.
type purchaseDetailBody struct {
	ProductId int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type purchaseRequestBody struct {
	UserId  int                  `json:"user_id"`
	Status  string               `json:"status"`
	Details []purchaseDetailBody `json:"details"`
}

type PurchaseHandler struct {
	service domain.PurchaseService
}

func NewPurchaseHandler(service domain.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
	}
}

func (h *PurchaseHandler) PlacePurchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	details := make([]domain.LineItem, 0, len(body.Details))
	for _, detail := range body.Details {
		details = append(details, domain.LineItem{
			ProductId: detail.ProductId,
			Quantity:  detail.Quantity,
			Price:     detail.Price,
		})
	}

	receipt, err := h.service.PlacePurchase(c, domain.PurchaseRequest{
		UserId:  body.UserId,
		Status:  body.Status,
		Details: details,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}
