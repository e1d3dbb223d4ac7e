package server

import (
	"context"

	"github.com/sifiratik/fidan/internal/handlers"
	"github.com/sifiratik/fidan/internal/module"
)

// RegisterRoutes sets up the page routes and boots every module on the root group.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	homeHandler := handlers.NewHomeHandler(handlers.HomeDependencies{
		Content:  s.Deps.Content,
		Renderer: s.Deps.Renderer,
		Cache:    s.Deps.PageCache,
		Locale:   s.Cfg.GetSiteLocale(),
		HTMXSrc:  s.Cfg.GetHTMXSrc(),
	})

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/health", handlers.HealthGet(s.Registry))

	return module.BootAll(ctx, s.modules, s.E.Group(""), s.Registry)
}
