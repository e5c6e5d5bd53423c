package plentymarkets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/plentymarkets/client-go/internal/api"
)

// Vendor authentication endpoints, relative to the base URL.
const (
	loginEndpoint   = "account/login"
	refreshEndpoint = "account/login/refresh"
)

// Client is a PlentyMarkets REST API client. It holds the connection state
// (base URL, header map, tokens) and performs HTTP calls with a single layer
// of bearer-token authentication: a 401 triggers exactly one token refresh
// followed by one retry of the original call.
//
// All mutable state is guarded by one mutex, so a Client is safe for
// concurrent use; retry decisions are made from each call's own response,
// never from state shared between calls.
type Client struct {
	api *api.Client
	log *zap.SugaredLogger

	mu           sync.Mutex
	headers      map[string]string
	accessToken  string
	refreshToken string
	lastStatus   int
	lastBody     []byte
}

// New creates a client. Construction fails only on misconfiguration, such as
// an unparseable base URL; everything else is reported per call.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		api:     apiClient,
		log:     logger,
		headers: make(map[string]string),
		// Until a call says otherwise, the connection is assumed healthy.
		lastStatus: http.StatusOK,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// loginResult mirrors the token fields of the vendor login response.
type loginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login authenticates with email and password against account/login. On
// success it stores the refresh token and installs the Authorization header
// carried by every subsequent call.
//
// A response missing either token field means invalid credentials or a wrong
// endpoint: the response is returned together with ErrAuthenticationFailed
// and no client state besides the last status is touched.
func (c *Client) Login(ctx context.Context, email, password string, opts ...LoginOption) (*Response, error) {
	cfg := &loginConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	body := map[string]any{
		"email":    email,
		"password": password,
		"id":       cfg.plentyID,
	}

	resp, err := c.api.Do(ctx, api.Request{
		Method:   http.MethodPost,
		Endpoint: loginEndpoint,
		JSONBody: body,
	})
	if err != nil {
		err = wrapError(err)
		c.log.Errorw("login request failed", "error", err)
		return nil, err
	}

	c.recordStatus(resp.StatusCode)
	out := &Response{StatusCode: resp.StatusCode, Body: resp.Body}

	var tokens loginResult
	if jsonErr := json.Unmarshal(resp.Body, &tokens); jsonErr != nil || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		c.log.Warnw("login failed", "status", resp.StatusCode)
		return out, fmt.Errorf("%w (invalid credentials or wrong endpoint)", ErrAuthenticationFailed)
	}

	c.mu.Lock()
	c.accessToken = tokens.AccessToken
	c.refreshToken = tokens.RefreshToken
	c.headers["Authorization"] = "Bearer " + tokens.AccessToken
	c.mu.Unlock()

	c.log.Infow("logged in", "status", resp.StatusCode)
	return out, nil
}

// RefreshLogin obtains a new refresh token via account/login/refresh, sent
// with the current headers and therefore the expiring bearer token.
//
// The vendor contract for this endpoint is unspecified. The body is decoded
// as JSON; a malformed body or one without a refreshToken field is reported
// as a *TransportError together with the raw response. When the body also
// carries an accessToken, the Authorization header is refreshed from it.
func (c *Client) RefreshLogin(ctx context.Context) (*Response, error) {
	resp, err := c.api.Do(ctx, api.Request{
		Method:   http.MethodPost,
		Endpoint: refreshEndpoint,
		Headers:  c.Headers(),
	})
	if err != nil {
		err = wrapError(err)
		c.log.Errorw("refresh request failed", "error", err)
		return nil, err
	}

	out := &Response{StatusCode: resp.StatusCode, Body: resp.Body}

	if !gjson.ValidBytes(resp.Body) {
		c.log.Warnw("refresh response is not valid JSON", "status", resp.StatusCode)
		return out, &TransportError{
			URL: c.api.BaseURL() + refreshEndpoint,
			Err: errors.New("refresh response is not valid JSON"),
		}
	}

	refresh := gjson.GetBytes(resp.Body, "refreshToken").String()
	if refresh == "" {
		c.log.Warnw("refresh response missing refreshToken", "status", resp.StatusCode)
		return out, &TransportError{
			URL: c.api.BaseURL() + refreshEndpoint,
			Err: errors.New("refresh response missing refreshToken"),
		}
	}

	c.mu.Lock()
	c.refreshToken = refresh
	if access := gjson.GetBytes(resp.Body, "accessToken").String(); access != "" {
		c.accessToken = access
		c.headers["Authorization"] = "Bearer " + access
	}
	c.mu.Unlock()

	c.log.Infow("refreshed access token", "status", resp.StatusCode)
	return out, nil
}

// Get performs a GET against <base><endpoint>. Params are appended as a
// URL-encoded query string in the order given, joined with "?" or, when the
// endpoint already contains a query separator, with "&".
func (c *Client) Get(ctx context.Context, endpoint string, params Params) (*Response, error) {
	return c.call(ctx, func(ctx context.Context) (*api.Response, error) {
		return c.api.Do(ctx, api.Request{
			Method:   http.MethodGet,
			Endpoint: endpoint,
			Query:    params.Encode(),
			Headers:  c.Headers(),
		})
	})
}

// Post performs a POST against <base><endpoint> with a form-encoded body.
func (c *Client) Post(ctx context.Context, endpoint string, data Params) (*Response, error) {
	return c.call(ctx, func(ctx context.Context) (*api.Response, error) {
		return c.api.Do(ctx, api.Request{
			Method:   http.MethodPost,
			Endpoint: endpoint,
			FormBody: data.Encode(),
			Headers:  c.Headers(),
		})
	})
}

// Put performs a PUT against <base><endpoint> with a form-encoded body.
func (c *Client) Put(ctx context.Context, endpoint string, data Params) (*Response, error) {
	return c.call(ctx, func(ctx context.Context) (*api.Response, error) {
		return c.api.Do(ctx, api.Request{
			Method:   http.MethodPut,
			Endpoint: endpoint,
			FormBody: data.Encode(),
			Headers:  c.Headers(),
		})
	})
}

// Delete performs a DELETE against <base><endpoint>.
func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.call(ctx, func(ctx context.Context) (*api.Response, error) {
		return c.api.Do(ctx, api.Request{
			Method:   http.MethodDelete,
			Endpoint: endpoint,
			Headers:  c.Headers(),
		})
	})
}

// call runs a verb exchange with the authentication retry layer.
//
// The verb closure reads the header map at execution time, so a retry issued
// after RefreshLogin carries the renewed bearer token. The retry is bounded
// to exactly one: a second 401 is returned as an error, not retried again.
func (c *Client) call(ctx context.Context, verb func(context.Context) (*api.Response, error)) (*Response, error) {
	resp, err := verb(ctx)
	if err != nil {
		err = wrapError(err)
		c.log.Errorw("request failed", "error", err)
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warnw("unauthorized, refreshing access token")
		if _, refreshErr := c.RefreshLogin(ctx); refreshErr != nil {
			// Retry anyway; the refresh endpoint is best-effort and the
			// original call is the authoritative outcome.
			c.log.Warnw("token refresh failed", "error", refreshErr)
		}
		resp, err = verb(ctx)
		if err != nil {
			err = wrapError(err)
			c.log.Errorw("request retry failed", "error", err)
			return nil, err
		}
	}

	c.recordStatus(resp.StatusCode)
	out := &Response{StatusCode: resp.StatusCode, Body: resp.Body}

	switch {
	case resp.StatusCode == http.StatusOK:
		c.recordContent(resp.Body)
		return out, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Other 2xx responses succeed but are not cached as last content.
		return out, nil
	case resp.StatusCode == http.StatusNotFound:
		c.log.Warnw("endpoint not found")
		return out, &APIError{StatusCode: resp.StatusCode, Body: resp.Body}
	default:
		// 401 after the retry, and every other non-2xx status, reach the
		// caller as an APIError alongside the response itself.
		return out, &APIError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
}

// SetHeader sets a header sent with every call.
func (c *Client) SetHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers[key] = value
}

// Headers returns a copy of the header map currently sent with every call.
func (c *Client) Headers() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	headers := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		headers[k] = v
	}
	return headers
}

// LastStatusCode returns the status code of the most recent response,
// defaulting to 200 before any call has been made.
func (c *Client) LastStatusCode() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastStatus
}

// LastContent returns the body of the most recent 200 response, or nil. The
// cached content survives later failures: 404s, transport errors and other
// non-200 statuses leave it untouched.
func (c *Client) LastContent() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastBody
}

func (c *Client) recordStatus(status int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastStatus = status
}

func (c *Client) recordContent(body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastBody = body
}
