package config

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sleuren/sleurencli/internal/telemetry/logger"
)

// DefaultEndpoint is the monitoring service API root.
const DefaultEndpoint = "https://sleuren.com/api/v1/"

// Config is the session configuration of sleurencli.
type Config struct {
	Endpoint string        `koanf:"endpoint" yaml:"endpoint"`
	APIKey   string        `koanf:"api_key" yaml:"api_key"`
	Secret   string        `koanf:"secret" yaml:"secret,omitempty"`
	Readonly bool          `koanf:"readonly" yaml:"readonly"`
	Debug    bool          `koanf:"debug" yaml:"debug"`
	HideIDs  bool          `koanf:"hide_ids" yaml:"hide_ids"`
	Timeout  time.Duration `koanf:"timeout" yaml:"timeout"`

	// RateLimit caps requests per second; 0 disables the limiter.
	RateLimit float64 `koanf:"rate_limit" yaml:"rate_limit"`

	// CAFile is a PEM bundle trusted in addition to the system roots.
	CAFile string `koanf:"ca_file" yaml:"ca_file,omitempty"`
}

// Default returns the default CLI configuration.
func Default() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		Timeout:  30 * time.Second,
	}
}

// Headers returns the authorization headers, or nil when no API key is
// configured. A nil result means the request cannot be made.
func (c *Config) Headers() http.Header {
	if c == nil || c.APIKey == "" {
		return nil
	}

	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.APIKey)
	h.Set("Accept", "application/json")
	if c.Secret != "" {
		h.Set("X-Api-Secret", c.Secret)
	}
	return h
}

// Params returns the credential query parameters some endpoints still
// expect alongside the Authorization header.
func (c *Config) Params() url.Values {
	if c == nil || c.APIKey == "" {
		return nil
	}
	return url.Values{"token": []string{c.APIKey}}
}

// URL joins the endpoint and a resource path.
func (c *Config) URL(path string) string {
	return strings.TrimRight(c.Endpoint, "/") + "/" + strings.TrimLeft(path, "/")
}

// Masked returns a copy safe for printing.
func (c *Config) Masked() *Config {
	m := *c
	m.APIKey = logger.Mask(c.APIKey)
	m.Secret = logger.Mask(c.Secret)
	return &m
}

// toMap flattens the config into koanf keys.
func (c *Config) toMap() map[string]any {
	m := map[string]any{
		"endpoint":   c.Endpoint,
		"api_key":    c.APIKey,
		"readonly":   c.Readonly,
		"debug":      c.Debug,
		"hide_ids":   c.HideIDs,
		"timeout":    c.Timeout.String(),
		"rate_limit": c.RateLimit,
	}
	if c.Secret != "" {
		m["secret"] = c.Secret
	}
	if c.CAFile != "" {
		m["ca_file"] = c.CAFile
	}
	return m
}
