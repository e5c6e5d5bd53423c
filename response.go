package plentymarkets

import (
	"encoding/json"
	"fmt"
)

// Response carries the status code and raw body of a vendor API exchange.
// It is returned alongside any error so callers can always inspect what the
// vendor actually sent.
type Response struct {
	StatusCode int
	Body       []byte
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(r.Body, v)
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
