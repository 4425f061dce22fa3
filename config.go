package primarium

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for a primarium instance. Fields are
// populated from the environment; zero values fall back to setDefaults.
type Config struct {
	Addr         string `env:"ADDR"`          // Listen address (default ":3000")
	PublicURL    string `env:"PUBLIC_URL"`    // Canonical URL published sites call back into
	DatabasePath string `env:"DATABASE_PATH"` // SQLite path (default "data/primarium.db")
	UploadsDir   string `env:"UPLOADS_DIR"`   // Member photo directory (default "data/uploads")

	AdminPassword string `env:"ADMIN_PASSWORD"` // Required: admin login password
	SessionSecret string `env:"SESSION_SECRET"` // Required: session encryption secret
	CookieSecure  bool   `env:"COOKIE_SECURE"`  // Set true for HTTPS

	N8NCreateURL string `env:"N8N_CREATE_SITE"` // Webhook for first publish
	N8NUpdateURL string `env:"N8N_UPDATE_SITE"` // Webhook for republish

	PostCacheTTL time.Duration `env:"POST_CACHE_TTL"` // Public API cache TTL (default 5min)
}

// ConfigFromEnv reads configuration from the process environment.
func ConfigFromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PublicURL == "" {
		c.PublicURL = "http://localhost:3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/primarium.db"
	}
	if c.UploadsDir == "" {
		c.UploadsDir = "data/uploads"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// APIBaseURL is the public API root baked into generated sites.
func (c Config) APIBaseURL() string {
	return strings.TrimRight(c.PublicURL, "/") + "/api/v1"
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithPublisher overrides the n8n publisher, mainly for tests.
func WithPublisher(p *Publisher) Option {
	return func(a *App) {
		a.publisher = p
	}
}
