package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/sleuren/sleurencli/internal/cli/config"
	"github.com/sleuren/sleurencli/internal/core/domain"
	"github.com/sleuren/sleurencli/internal/infra/buildinfo"
	"github.com/sleuren/sleurencli/internal/infra/tlsroots"
	"github.com/sleuren/sleurencli/internal/telemetry/logger"
	"github.com/sleuren/sleurencli/internal/telemetry/metric"
)

// HTTPClient provides HTTP communication with the monitoring service.
type HTTPClient struct {
	cfg     *config.Config
	client  *http.Client
	limiter *rate.Limiter
	metrics *metric.Registry
	log     logger.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithMetrics records every request into r.
func WithMetrics(r *metric.Registry) Option {
	return func(c *HTTPClient) {
		c.metrics = r
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logger.Logger) Option {
	return func(c *HTTPClient) {
		c.log = l
	}
}

// WithRootCAs trusts the roots in p instead of the system pool alone.
func WithRootCAs(p *tlsroots.Pool) Option {
	return func(c *HTTPClient) {
		tr := http.DefaultTransport.(*http.Transport).Clone()
		tr.TLSClientConfig = p.TLSConfig()
		c.client.Transport = tr
	}
}

// NewHTTPClient creates a new HTTP client for the session config.
func NewHTTPClient(cfg *config.Config, opts ...Option) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &HTTPClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    logger.Default(),
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = metric.NewRegistry()
	}

	return c
}

// Get performs a GET request and returns the body of a 200 response.
// Credential query parameters are attached.
func (c *HTTPClient) Get(ctx context.Context, path string) ([]byte, error) {
	return c.roundTrip(ctx, http.MethodGet, path, c.cfg.Params(), nil)
}

// Post performs a POST request with an optional JSON body.
func (c *HTTPClient) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.roundTrip(ctx, http.MethodPost, path, nil, body)
}

// Put performs a PUT request with a JSON body.
func (c *HTTPClient) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.roundTrip(ctx, http.MethodPut, path, nil, body)
}

// Metrics returns the request metrics of this client.
func (c *HTTPClient) Metrics() *metric.Registry {
	return c.metrics
}

func (c *HTTPClient) roundTrip(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	data, err := ReadBody(resp)
	if err != nil {
		logger.L(logger.WithLogger(ctx, c.log)).Debug("response rejected", "method", method, "path", path,
			"code", domain.GetErrorCode(err), "status", domain.StatusCode(err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return data, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	headers := c.cfg.Headers()
	if headers == nil {
		return nil, domain.ErrAuthMissing
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	target := c.cfg.URL(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := ulid.Make().String()
	for k, v := range headers {
		req.Header[k] = v
	}
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resource := resourceLabel(path)
	log := logger.L(logger.WithRequestID(logger.WithLogger(ctx, c.log), requestID))

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, domain.ErrTransport.WithDetails(method + " " + path).WithCause(err)
		}
	}

	log.Debug("request", "method", method, "url", c.cfg.URL(path))
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.ObserveError(method, resource)
		log.Debug("request failed", "method", method, "error", err)
		return nil, domain.ErrTransport.WithDetails(method + " " + path).WithCause(err)
	}

	elapsed := time.Since(start)
	c.metrics.ObserveResponse(method, resource, resp.StatusCode, elapsed)
	log.Debug("response", "method", method, "status", resp.StatusCode, "duration", elapsed.Round(time.Millisecond))

	return resp, nil
}

// resourceLabel reduces a path to its first segment ("server/42" -> "server").
func resourceLabel(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}

// ReadBody drains and closes the response. Anything but 200 is a
// transport failure carrying the status code.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.ErrTransport.WithStatus(resp.StatusCode).WithCause(err)
	}

	if resp.StatusCode != http.StatusOK {
		return data, domain.ErrTransport.WithStatus(resp.StatusCode).WithDetails(errorMessage(data))
	}

	return data, nil
}

// errorMessage extracts {"message": ...} from an error body, if present.
func errorMessage(data []byte) string {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &errResp); err != nil {
		return ""
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	return errResp.Error
}
