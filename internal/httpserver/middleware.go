package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionHeader carries the cart session token issued by POST /api/cart.
const sessionHeader = "X-Cart-Session"

const cartIDKey = "cartID"

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// cartSession resolves the session token into a cart id, rejecting requests
// without a live session.
func (h *handlers) cartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(sessionHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing cart session"})
			return
		}
		cartID, ok := h.deps.Sessions.Resolve(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown or expired cart session"})
			return
		}
		c.Set(cartIDKey, cartID)
		c.Next()
	}
}

func cartIDFrom(c *gin.Context) string {
	return c.GetString(cartIDKey)
}
