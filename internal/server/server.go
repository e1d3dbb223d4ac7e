package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sifiratik/fidan/internal/app"
	"github.com/sifiratik/fidan/internal/config"
	"github.com/sifiratik/fidan/internal/handlers"
	appmiddleware "github.com/sifiratik/fidan/internal/middleware"
	"github.com/sifiratik/fidan/internal/module"
	"github.com/sifiratik/fidan/internal/pubsub"
	"github.com/sifiratik/fidan/internal/registry"
	"github.com/sifiratik/fidan/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Deps     app.Dependencies
	Registry *registry.Registry

	modules []module.Module
	bus     pubsub.Subscriber
}

// New wires the core services and the HTTP stack. Content that fails to
// load or validate is returned as an error so the process can refuse to start.
func New(cfg config.Provider, opts app.Options) (*Server, error) {
	deps, err := app.Resolve(app.NewContainer(cfg, opts))
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())

	// Sessions only carry flash messages for the no-script redirects.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 10,
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	// Static assets are embedded in the binary.
	e.StaticFS("/static", web.Static())

	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	reg := registry.New(cfg)
	registry.Set(reg, registry.ContentStoreKey, deps.Content)
	registry.Set(reg, registry.PublisherKey, deps.Publisher)

	mods := app.NewModules(deps)
	if err := module.RegisterAll(mods, reg); err != nil {
		return nil, err
	}

	return &Server{
		E:        e,
		Cfg:      cfg,
		Deps:     deps,
		Registry: reg,
		modules:  mods,
		bus:      deps.Subscriber,
	}, nil
}

// Shutdown stops the HTTP server, the modules and the bus, in that order.
func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.E.Shutdown(ctx)
	modErr := module.ShutdownAll(ctx, s.modules)
	busErr := s.bus.Close()
	s.Deps.PageCache.Close()
	return errors.Join(httpErr, modErr, busErr)
}
