package connection

import (
	"github.com/sleuren/sleurencli/internal/cli/config"
	"github.com/sleuren/sleurencli/internal/telemetry/logger"
	"github.com/sleuren/sleurencli/internal/telemetry/metric"
)

// Manager holds the session of one CLI invocation: the config, the
// HTTP client built from it and the request metrics.
type Manager struct {
	cfg     *config.Config
	client  *HTTPClient
	metrics *metric.Registry
	log     logger.Logger
	opts    []Option
}

// NewManager creates a manager for cfg. opts are passed to the client
// when it is first built.
func NewManager(cfg *config.Config, log logger.Logger, opts ...Option) *Manager {
	if log == nil {
		log = logger.Default()
	}
	return &Manager{
		cfg:     cfg,
		metrics: metric.NewRegistry(),
		log:     log,
		opts:    opts,
	}
}

// Config returns the session config.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Client returns the HTTP client, creating it on first use.
func (m *Manager) Client() *HTTPClient {
	if m.client == nil {
		opts := append([]Option{WithMetrics(m.metrics), WithLogger(m.log)}, m.opts...)
		m.client = NewHTTPClient(m.cfg, opts...)
	}
	return m.client
}

// Metrics returns the request metrics of this session.
func (m *Manager) Metrics() *metric.Registry {
	return m.metrics
}

// Logger returns the session logger.
func (m *Manager) Logger() logger.Logger {
	return m.log
}
