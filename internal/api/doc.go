// Package api provides the HTTP transport for communicating with the
// PlentyMarkets REST API. It builds request URLs from the configured base URL,
// serializes JSON and form-encoded bodies, and surfaces network-level failures
// as typed errors.
//
// # Responsibilities
//
// The transport is deliberately thin: it carries no authentication state and
// makes no status-code decisions. Callers pass the header map (including the
// Authorization header) per request, and receive back the raw status code and
// body of whatever response the vendor produced. Classifying statuses, caching
// bodies and retrying after a token refresh all happen in the root package.
//
// # URL Construction
//
// Endpoints are path suffixes concatenated onto the base URL. A pre-encoded
// query string is appended with "?", or with "&" when the endpoint already
// contains a query separator anywhere in the string.
//
// # Error Handling
//
// Only network-level failures (connection errors, timeouts, cancelled
// contexts) are returned as errors, always as [*NetworkError]. A received
// response is never an error at this layer, whatever its status code.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use.
package api
