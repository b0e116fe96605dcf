package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestIdMiddleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()

		writer := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(writer)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		NewRequestIdMiddleware()(c)

		requestId := writer.Header().Get(RequestIdHeader)
		_, err := uuid.Parse(requestId)
		assert.NoError(t, err)
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		t.Parallel()

		writer := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(writer)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set(RequestIdHeader, "client-id-123")

		NewRequestIdMiddleware()(c)

		assert.Equal(t, "client-id-123", writer.Header().Get(RequestIdHeader))
	})
}
