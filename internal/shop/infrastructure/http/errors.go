package http

import (
	"errors"
	"net/http"

	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/gin-gonic/gin"
)

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.EmailTakenError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.UserNotFoundError{}),
		errors.Is(err, &domain.ProductNotFoundError{}),
		errors.Is(err, &domain.InsufficientStockError{}),
		errors.Is(err, &domain.PurchaseLimitError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
