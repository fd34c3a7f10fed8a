// api/handlers/router.go
package handlers

import (
	"net/http"

	"pagepulse/api/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the full HTTP surface. The store and the tracked host
// are passed in explicitly so the router can be built against a fake store
// in tests.
func NewRouter(counterStore CounterStore, trackedHost string) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	h := NewTrackerHandlers(counterStore, trackedHost)

	r.GET("/tracker.js", h.ServeTrackerScript)

	send := r.Group("/send", middleware.SendCORS(trackedHost))
	{
		send.OPTIONS("", h.Preflight)
		send.POST("", middleware.OriginRequired(trackedHost), h.Send)
	}

	r.GET("/share", h.Share)

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not Found")
	})

	return r
}
