package middleware

import (
	"mensajeria_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID 为每个请求分配 ID，客户端传了 X-Request-ID 时沿用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(constants.CtxRequestID, id)
		c.Header(constants.HeaderRequestID, id)
		c.Next()
	}
}
