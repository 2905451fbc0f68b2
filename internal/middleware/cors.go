package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fleveque/research-service/internal/config"
)

// CORS returns middleware that sets Cross-Origin Resource Sharing headers on
// every response, whether or not the request carried an Origin header.
//
// CORS explained: browsers block cross-origin requests by default. The server
// must explicitly allow them via these headers. For preflight OPTIONS requests,
// we return 204 immediately (no content) and add Access-Control-Max-Age so the
// browser can cache the answer.
//
// Non-preflight responses are also marked as JSON here. Gin's renderers only
// set Content-Type when it is still empty, so handlers keep this exact value.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	// Join once at construction time, not per request.
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowOrigin)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Max-Age", maxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Header("Content-Type", "application/json")
		c.Next()
	}
}
