package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/registry"
)

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status          string   `json:"status"`
	ContentRevision uint64   `json:"content_revision"`
	FAQEntries      int      `json:"faq_entries"`
	Services        []string `json:"services,omitempty"`
}

// HealthGet reports liveness together with the content revision being served.
func HealthGet(reg *registry.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		store, ok := registry.Get(reg, registry.ContentStoreKey)
		if !ok {
			return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "starting"})
		}
		snap := store.Current()
		return c.JSON(http.StatusOK, HealthResponse{
			Status:          "ok",
			ContentRevision: snap.Revision,
			FAQEntries:      len(snap.Site.FAQ.Entries),
			Services:        reg.Names(),
		})
	}
}
