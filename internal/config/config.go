package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration handed to modules.
type Provider interface {
	GetAddr() string
	GetEnv() string
	IsDevelopment() bool
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentFile() string
	GetContentWatch() bool
	GetSiteLocale() string
	GetHTMXSrc() string
	GetNewsletterSink() string
	GetRateLimitPerMin() int
	GetRenderCacheMB() int
}

// Sink names accepted by NEWSLETTER_SINK.
const (
	SinkBus = "bus"
	SinkLog = "log"
)

// DefaultHTMXSrc is the htmx script loaded when HTMX_SRC is unset.
const DefaultHTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

const (
	defaultAddr        = ":8080"
	defaultEnv         = "development"
	defaultLocale      = "tr"
	defaultRateLimit   = 10
	defaultCacheMB     = 16
	devSessionSecret   = "fidan-development-session-secret"
	environmentProduct = "production"
)

// Config holds all configuration for the application.
type Config struct {
	Addr           string
	Env            string
	AppBaseURL     string
	SessionSecret  string
	ContentFile    string
	ContentWatch   bool
	SiteLocale     string
	HTMXSrc        string
	NewsletterSink string
	RateLimit      int
	RenderCacheMB  int
}

// New loads configuration from a .env file (if present) and environment variables.
// It exits the process when the configuration is unusable.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the given lookup function, applying defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Addr:           orDefault(getenv("APP_ADDR"), defaultAddr),
		Env:            strings.ToLower(orDefault(getenv("APP_ENV"), defaultEnv)),
		AppBaseURL:     getenv("APP_BASE_URL"),
		SessionSecret:  getenv("SESSION_SECRET"),
		ContentFile:    getenv("CONTENT_FILE"),
		SiteLocale:     orDefault(getenv("SITE_LOCALE"), defaultLocale),
		HTMXSrc:        orDefault(getenv("HTMX_SRC"), DefaultHTMXSrc),
		NewsletterSink: strings.ToLower(orDefault(getenv("NEWSLETTER_SINK"), SinkBus)),
		RateLimit:      intOrDefault(getenv("RATE_LIMIT_PER_MIN"), defaultRateLimit),
		RenderCacheMB:  intOrDefault(getenv("RENDER_CACHE_MB"), defaultCacheMB),
	}

	if cfg.AppBaseURL == "" {
		cfg.AppBaseURL = "http://localhost" + cfg.Addr
	}

	// Content watching follows the environment unless set explicitly.
	cfg.ContentWatch = cfg.IsDevelopment()
	if raw := getenv("CONTENT_WATCH"); raw != "" {
		watch, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("CONTENT_WATCH must be a boolean")
		}
		cfg.ContentWatch = watch
	}

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("SESSION_SECRET is required outside development")
		}
		cfg.SessionSecret = devSessionSecret
	}

	switch cfg.NewsletterSink {
	case SinkBus, SinkLog:
	default:
		return nil, errors.New("NEWSLETTER_SINK must be one of: bus, log")
	}

	if cfg.RateLimit < 1 {
		return nil, errors.New("RATE_LIMIT_PER_MIN must be positive")
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOrDefault(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (c *Config) GetAddr() string { return c.Addr }
func (c *Config) GetEnv() string { return c.Env }
func (c *Config) IsDevelopment() bool { return c.Env != environmentProduct }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentFile() string { return c.ContentFile }
func (c *Config) GetContentWatch() bool { return c.ContentWatch }
func (c *Config) GetSiteLocale() string { return c.SiteLocale }
func (c *Config) GetHTMXSrc() string { return c.HTMXSrc }
func (c *Config) GetNewsletterSink() string { return c.NewsletterSink }
func (c *Config) GetRateLimitPerMin() int { return c.RateLimit }
func (c *Config) GetRenderCacheMB() int { return c.RenderCacheMB }
