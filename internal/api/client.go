package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Default transport settings.
const (
	DefaultTimeout = 30 * time.Second
)

// Config holds transport configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.SugaredLogger
}

// Client performs HTTP exchanges against the vendor API. It carries no
// authentication state; callers supply headers per request.
type Client struct {
	baseURL string
	rc      *resty.Client
	log     *zap.SugaredLogger
}

// NewClient creates a transport client for the given base URL.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", cfg.BaseURL)
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rc.SetTimeout(timeout)

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Client{
		baseURL: cfg.BaseURL,
		rc:      rc,
		log:     log,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes a single exchange with the vendor API. Endpoint is a
// path suffix appended to the base URL. Query and FormBody are pre-encoded;
// JSONBody takes precedence over FormBody when both are set.
type Request struct {
	Method   string
	Endpoint string
	Query    string
	FormBody string
	JSONBody any
	Headers  map[string]string
}

// Response is a raw vendor response. Status classification happens in the
// caller, not here.
type Response struct {
	StatusCode int
	Body       []byte
}

// Do executes the request. Network-level failures are returned as
// *NetworkError; any received response, whatever its status, is returned
// without error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	r := c.rc.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}

	switch {
	case req.JSONBody != nil:
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(req.JSONBody)
	case req.FormBody != "":
		r.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		r.SetBody(req.FormBody)
	}

	u := c.buildURL(req.Endpoint, req.Query)

	resp, err := r.Execute(req.Method, u)
	if err != nil {
		c.log.Debugw("request failed", "method", req.Method, "url", u, "error", err)
		return nil, &NetworkError{URL: u, Err: err}
	}

	c.log.Debugw("request completed", "method", req.Method, "url", u, "status", resp.StatusCode())

	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// buildURL joins base URL, endpoint and query string. The query separator is
// chosen by whether the endpoint already contains one, anywhere in the
// string, not just at its end.
func (c *Client) buildURL(endpoint, query string) string {
	u := c.baseURL + endpoint
	if query == "" {
		return u
	}
	if strings.Contains(endpoint, "?") {
		return u + "&" + query
	}
	return u + "?" + query
}

// NetworkError represents a failure to complete an HTTP exchange: connection
// errors, timeouts, cancelled contexts.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
