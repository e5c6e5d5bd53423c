package plentymarkets

import (
	"net/url"
	"strings"
)

// Param is a single key/value pair of a query string or form body.
type Param struct {
	Key   string
	Value string
}

// P is shorthand for building a Param.
func P(key, value string) Param {
	return Param{Key: key, Value: value}
}

// Params is an ordered parameter list. Unlike url.Values, encoding preserves
// the order in which the parameters were given, so the request URL mirrors
// the caller's argument order.
type Params []Param

// Encode returns the URL-encoded form of p. Keys and values are escaped;
// an empty list encodes to the empty string.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}
