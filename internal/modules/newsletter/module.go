package newsletter

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/middleware"
	"github.com/sifiratik/fidan/internal/module"
	signup "github.com/sifiratik/fidan/internal/newsletter"
	"github.com/sifiratik/fidan/internal/registry"
	"github.com/sifiratik/fidan/internal/rendering"
)

// NewsletterModule serves the footer sign-up form.
type NewsletterModule struct {
	module.BaseModule
	content  *content.Store
	renderer rendering.Renderer
	service  *signup.Service
}

// Dependencies holds all the services that the NewsletterModule requires to operate.
type Dependencies struct {
	Content  *content.Store
	Renderer rendering.Renderer
	Service  *signup.Service
}

// New creates a new instance of the NewsletterModule, injecting its dependencies.
func New(deps Dependencies) *NewsletterModule {
	return &NewsletterModule{
		content:  deps.Content,
		renderer: deps.Renderer,
		service:  deps.Service,
	}
}

// Name returns the module name.
func (m *NewsletterModule) Name() string {
	return "newsletter"
}

// Boot sets up the rate-limited sign-up route.
func (m *NewsletterModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting NewsletterModule: Setting up routes...")
	handler := NewHandler(m.content, m.renderer, m.service)
	rateLimiter := middleware.RateLimiter(reg.Config().GetRateLimitPerMin())

	g.POST("/newsletter", handler.SubscribePost, rateLimiter)
	return nil
}
