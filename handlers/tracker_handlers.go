// api/handlers/tracker_handlers.go
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"pagepulse/api/models"
	"pagepulse/api/utils"

	"github.com/gin-gonic/gin"
)

// CounterStore is what the handlers need from the durable store. The
// concrete implementation lives in the store package; tests substitute an
// in-memory one.
type CounterStore interface {
	EnsureSchema(ctx context.Context) error
	Increment(ctx context.Context, pathname string) error
	Read(ctx context.Context, pathname string) (int64, error)
}

type TrackerHandlers struct {
	Store       CounterStore
	TrackedHost string
}

func NewTrackerHandlers(s CounterStore, trackedHost string) *TrackerHandlers {
	return &TrackerHandlers{
		Store:       s,
		TrackedHost: trackedHost,
	}
}

// ServeTrackerScript returns the client beacon. Intentionally public: the
// script is not sensitive, so any Origin is echoed and no host check runs.
func (h *TrackerHandlers) ServeTrackerScript(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("X-Content-Type-Options", "nosniff")
	if origin := c.GetHeader("Origin"); origin != "" {
		c.Header("Access-Control-Allow-Origin", origin)
	}
	c.Data(http.StatusOK, "application/javascript; charset=UTF-8", []byte(trackerScript))
}

// Preflight answers OPTIONS /send. The CORS headers themselves are set by
// middleware.SendCORS; a non-tracked origin gets the same 204 but without
// the allow-origin echo, which makes the browser refuse the follow-up POST.
func (h *TrackerHandlers) Preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Send records one pageview. The origin gate has already run by the time
// this handler is reached, so the body is parsed, the pathname validated,
// and the counter incremented with a single atomic upsert.
func (h *TrackerHandlers) Send(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.Store.EnsureSchema(ctx); err != nil {
		log.Printf("Error ensuring pageviews schema: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal_error"})
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_json"})
		return
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_json"})
		return
	}

	// A non-object body or a missing key both read as a nil pathname here,
	// which the normalizer rejects.
	fields, _ := body.(map[string]any)
	pathname, ok := utils.NormalizePathname(fields["pathname"])
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_pathname"})
		return
	}

	if err := h.Store.Increment(ctx, pathname); err != nil {
		log.Printf("Error incrementing views for %q: %v", pathname, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Share is the public read endpoint: the current count for a pathname, with
// views defaulting to 0 for paths that were never reported. No host check —
// counts are not secret.
func (h *TrackerHandlers) Share(c *gin.Context) {
	pathname, ok := utils.NormalizePathname(c.Query("pathname"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_pathname"})
		return
	}

	ctx := c.Request.Context()

	if err := h.Store.EnsureSchema(ctx); err != nil {
		log.Printf("Error ensuring pageviews schema: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal_error"})
		return
	}

	views, err := h.Store.Read(ctx, pathname)
	if err != nil {
		log.Printf("Error reading views for %q: %v", pathname, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, models.PageviewCounter{Pathname: pathname, Views: views})
}
