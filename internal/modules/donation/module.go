package donation

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/middleware"
	"github.com/sifiratik/fidan/internal/module"
	"github.com/sifiratik/fidan/internal/registry"
	"github.com/sifiratik/fidan/internal/rendering"
)

// DonationModule serves the hero donation selector.
type DonationModule struct {
	module.BaseModule
	content  *content.Store
	renderer rendering.Renderer
}

// Dependencies holds all the services that the DonationModule requires to operate.
// The publisher is looked up from the registry at boot.
type Dependencies struct {
	Content  *content.Store
	Renderer rendering.Renderer
}

// New creates a new instance of the DonationModule, injecting its dependencies.
func New(deps Dependencies) *DonationModule {
	return &DonationModule{
		content:  deps.Content,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *DonationModule) Name() string {
	return "donation"
}

// Boot sets up the routes for the donation selector.
func (m *DonationModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting DonationModule: Setting up routes...")
	publisher := registry.MustGet(reg, registry.PublisherKey)
	handler := NewHandler(m.content, m.renderer, publisher)
	rateLimiter := middleware.RateLimiter(reg.Config().GetRateLimitPerMin())

	g.POST("/donation/amount", handler.AmountPost)
	g.POST("/donation/intent", handler.IntentPost, rateLimiter)
	g.POST("/donation/explore", handler.ExplorePost, rateLimiter)
	return nil
}
