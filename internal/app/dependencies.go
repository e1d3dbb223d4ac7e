package app

import (
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/sifiratik/fidan/internal/config"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/newsletter"
	"github.com/sifiratik/fidan/internal/pubsub"
	"github.com/sifiratik/fidan/internal/rendering"
	"github.com/sifiratik/fidan/internal/telemetry"
	"github.com/spf13/afero"
)

// Dependencies holds the core services that are required by the application's modules.
// It is resolved once from the container and handed to NewModules and the server.
type Dependencies struct {
	Config     config.Provider
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   *rendering.UniversalRenderer
	Content    *content.Store
	PageCache  *rendering.PageCache
	Newsletter *newsletter.Service
	Telemetry  *telemetry.Subscriber
}

// Options tweaks how the container builds its services. The zero value
// reads content from the OS filesystem.
type Options struct {
	Fs afero.Fs
}

// NewContainer registers every core service provider. Services are built
// lazily on first Invoke.
func NewContainer(cfg config.Provider, opts Options) do.Injector {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fs)
	do.Provide(i, provideBridge)
	do.Provide(i, provideContent)
	do.Provide(i, providePageCache)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideNewsletter)
	do.Provide(i, provideTelemetry)
	return i
}

// Resolve builds every service and collects them into Dependencies.
func Resolve(i do.Injector) (Dependencies, error) {
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return Dependencies{}, err
	}
	bridge, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return Dependencies{}, err
	}
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return Dependencies{}, err
	}
	cache, err := do.Invoke[*rendering.PageCache](i)
	if err != nil {
		return Dependencies{}, err
	}
	renderer, err := do.Invoke[*rendering.UniversalRenderer](i)
	if err != nil {
		return Dependencies{}, err
	}
	svc, err := do.Invoke[*newsletter.Service](i)
	if err != nil {
		return Dependencies{}, err
	}
	tel, err := do.Invoke[*telemetry.Subscriber](i)
	if err != nil {
		return Dependencies{}, err
	}

	return Dependencies{
		Config:     cfg,
		Publisher:  bridge,
		Subscriber: bridge,
		Renderer:   renderer,
		Content:    store,
		PageCache:  cache,
		Newsletter: svc,
		Telemetry:  tel,
	}, nil
}

func provideBridge(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func provideContent(i do.Injector) (*content.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	fs := do.MustInvoke[afero.Fs](i)

	store := content.NewStore(fs, cfg.GetContentFile())
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func providePageCache(i do.Injector) (*rendering.PageCache, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return rendering.NewPageCache(cfg.GetRenderCacheMB())
}

func provideRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideNewsletter(i do.Injector) (*newsletter.Service, error) {
	cfg := do.MustInvoke[config.Provider](i)
	bridge := do.MustInvoke[*pubsub.WatermillBridge](i)

	sink := newsletter.NewSink(cfg.GetNewsletterSink(), bridge)
	slog.Info("Newsletter sink selected", "sink", cfg.GetNewsletterSink())
	return newsletter.NewService(sink), nil
}

func provideTelemetry(i do.Injector) (*telemetry.Subscriber, error) {
	bridge := do.MustInvoke[*pubsub.WatermillBridge](i)
	return telemetry.NewSubscriber(bridge, slog.Default()), nil
}
