package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o header de correlação de requisições
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey é a chave do request id no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID gera (ou propaga) um id de correlação por requisição
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
