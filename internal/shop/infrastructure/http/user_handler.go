package http

import (
	"net/http"

	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/domain"
	"github.com/gin-gonic/gin"
)

type createUserRequestBody struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
	Age   *int    `json:"age" binding:"omitempty,gt=0"`
}

type UserHandler struct {
	service domain.UserService
}

func NewUserHandler(service domain.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var body createUserRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	user, err := h.service.CreateUser(c, domain.NewUser{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
		Age:   body.Age,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
