// api/middleware/cors.go
package middleware

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// SendCORS provides the CORS headers for the /send endpoint. The
// access-control-allow-origin echo is conditional: only an Origin whose host
// equals the tracked site host gets one. A mismatched origin still receives
// the method/header constants, but without the allow-origin echo the
// browser's own CORS enforcement blocks the cross-site caller.
func SendCORS(trackedHost string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			if u, err := url.Parse(origin); err == nil && u.Host == trackedHost {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Vary", "Origin")
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "content-type")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		c.Next()
	}
}
