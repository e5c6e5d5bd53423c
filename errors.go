package plentymarkets

import (
	"errors"
	"fmt"

	"github.com/plentymarkets/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrAuthenticationFailed is returned by Login when the response does not
	// carry both token fields, meaning invalid credentials or a wrong endpoint.
	ErrAuthenticationFailed = errors.New("authentication failed: login response missing token fields")

	// ErrUnauthorized is returned when a call still gets a 401 after the
	// single token refresh and retry.
	ErrUnauthorized = errors.New("unauthorized: expired or invalid access token")

	// ErrEndpointNotFound is returned when the vendor answers 404.
	ErrEndpointNotFound = errors.New("endpoint not found")
)

// ClientError is implemented by all errors produced by this package.
type ClientError interface {
	error
	ClientError() // marker method
}

// maxErrorBody bounds how much of a response body appears in error messages.
const maxErrorBody = 256

// APIError represents a non-2xx response from the PlentyMarkets API. The
// full response is still returned to the caller; the error exists so the
// outcome cannot be silently ignored.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("API error %d", e.StatusCode)
	}
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, body)
}

// ClientError implements the ClientError interface.
func (e *APIError) ClientError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrEndpointNotFound
	}
	return false
}

// TransportError represents a network or response-parsing failure. Such
// failures never escape as panics or untyped errors; the previously cached
// state is left untouched.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ClientError implements the ClientError interface.
func (e *TransportError) ClientError() {}

// wrapError converts internal transport errors to public errors so that
// errors.As() checks work with the public types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &TransportError{URL: netErr.URL, Err: netErr.Err}
	}

	return err
}
