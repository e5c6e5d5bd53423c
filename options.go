package plentymarkets

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the vendor host and REST path prefix used when no
	// base URL is configured. Endpoints are appended to it directly, so it
	// keeps its trailing slash.
	DefaultBaseURL = "https://www.plentymarkets.co.uk/rest/"

	// DefaultTimeout bounds each HTTP exchange. The vendor API itself
	// defines no timeout.
	DefaultTimeout = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// loginConfig holds configuration for a login call.
type loginConfig struct {
	plentyID int
}

// Option configures the client.
type Option func(*clientConfig)

// LoginOption configures a login call.
type LoginOption func(*loginConfig)

// WithBaseURL sets the API base URL. Endpoints are appended to it as-is, so
// it should end with the vendor's REST path prefix, trailing slash included.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for request diagnostics. By default the
// client logs nothing.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithPlentyID sets the plenty ID sent with the login request. Default: 0.
func WithPlentyID(id int) LoginOption {
	return func(c *loginConfig) {
		c.plentyID = id
	}
}
