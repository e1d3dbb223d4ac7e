package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults for development", func(t *testing.T) {
		cfg, err := FromEnv(envMap(nil))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.GetAddr())
		assert.True(t, cfg.IsDevelopment())
		assert.True(t, cfg.GetContentWatch(), "development watches content by default")
		assert.Equal(t, "tr", cfg.GetSiteLocale())
		assert.Equal(t, SinkBus, cfg.GetNewsletterSink())
		assert.Equal(t, 10, cfg.GetRateLimitPerMin())
		assert.Equal(t, 16, cfg.GetRenderCacheMB())
		assert.Equal(t, "http://localhost:8080", cfg.GetAppBaseURL())
		assert.NotEmpty(t, cfg.GetSessionSecret())
	})

	t.Run("production requires a session secret", func(t *testing.T) {
		_, err := FromEnv(envMap(map[string]string{"APP_ENV": "production"}))
		assert.ErrorContains(t, err, "SESSION_SECRET")
	})

	t.Run("production settings", func(t *testing.T) {
		cfg, err := FromEnv(envMap(map[string]string{
			"APP_ENV":            "Production",
			"SESSION_SECRET":     "s3cret",
			"APP_ADDR":           ":9000",
			"NEWSLETTER_SINK":    "log",
			"RATE_LIMIT_PER_MIN": "30",
			"CONTENT_FILE":       "site.yaml",
		}))
		require.NoError(t, err)

		assert.False(t, cfg.IsDevelopment())
		assert.False(t, cfg.GetContentWatch())
		assert.Equal(t, "s3cret", cfg.GetSessionSecret())
		assert.Equal(t, ":9000", cfg.GetAddr())
		assert.Equal(t, SinkLog, cfg.GetNewsletterSink())
		assert.Equal(t, 30, cfg.GetRateLimitPerMin())
		assert.Equal(t, "site.yaml", cfg.GetContentFile())
	})

	t.Run("explicit content watch", func(t *testing.T) {
		cfg, err := FromEnv(envMap(map[string]string{"CONTENT_WATCH": "false"}))
		require.NoError(t, err)
		assert.False(t, cfg.GetContentWatch())

		_, err = FromEnv(envMap(map[string]string{"CONTENT_WATCH": "sometimes"}))
		assert.Error(t, err)
	})

	t.Run("rejects unknown sink", func(t *testing.T) {
		_, err := FromEnv(envMap(map[string]string{"NEWSLETTER_SINK": "smtp"}))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		_, err := FromEnv(envMap(map[string]string{"RATE_LIMIT_PER_MIN": "0"}))
		assert.Error(t, err)
	})
}
