package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/registry"
)

// Module is one interactive section of the page: the FAQ accordion, the
// donation form or the newsletter sign-up. The server drives every module
// through Register, then Boot, then Shutdown.
type Module interface {
	Name() string

	// Register publishes services other modules may look up during Boot.
	Register(reg *registry.Registry) error

	// Boot mounts the module's routes. Every service is registered by now.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases whatever Boot started.
	Shutdown(ctx context.Context) error
}

// BaseModule gives no-op phases to embed.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}

// RegisterAll runs the Register phase of every module in order.
func RegisterAll(mods []Module, reg *registry.Registry) error {
	for _, m := range mods {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("module %s: register: %w", m.Name(), err)
		}
	}
	return nil
}

// BootAll runs the Boot phase of every module in order on router.
func BootAll(ctx context.Context, mods []Module, router *echo.Group, reg *registry.Registry) error {
	for _, m := range mods {
		slog.Info("Booting module", "module", m.Name())
		if err := m.Boot(ctx, router, reg); err != nil {
			return fmt.Errorf("module %s: boot: %w", m.Name(), err)
		}
	}
	return nil
}

// ShutdownAll shuts modules down in reverse boot order. Every module gets the
// call; the errors are joined.
func ShutdownAll(ctx context.Context, mods []Module) error {
	var errs []error
	for i := len(mods) - 1; i >= 0; i-- {
		if err := mods[i].Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module %s: shutdown: %w", mods[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
