package faq

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/module"
	"github.com/sifiratik/fidan/internal/registry"
	"github.com/sifiratik/fidan/internal/rendering"
)

// FAQModule serves the accordion fragment.
type FAQModule struct {
	module.BaseModule
	content  *content.Store
	renderer rendering.Renderer
}

// Dependencies holds all the services that the FAQModule requires to operate.
type Dependencies struct {
	Content  *content.Store
	Renderer rendering.Renderer
}

// New creates a new instance of the FAQModule, injecting its dependencies.
func New(deps Dependencies) *FAQModule {
	return &FAQModule{
		content:  deps.Content,
		renderer: deps.Renderer,
	}
}

// Name returns the module name.
func (m *FAQModule) Name() string {
	return "faq"
}

// Boot sets up the routes for the accordion.
func (m *FAQModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting FAQModule: Setting up routes...")
	handler := NewHandler(m.content, m.renderer)

	g.POST("/faq/toggle", handler.TogglePost)
	return nil
}
