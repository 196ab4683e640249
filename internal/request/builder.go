// Package request builds concrete request specs (path, query, headers)
// for the IG REST API from an endpoint identifier and the current
// session tokens. It performs no I/O.
package request

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// Auth is the per-call authentication snapshot taken from session
// state. CST and SecurityToken are empty before login; they are still
// sent as empty headers and the server rejects the call, matching the
// upstream client behavior.
type Auth struct {
	APIKey        string
	CST           string
	SecurityToken string
}

// Spec is one fully assembled request, ready for the transport.
type Spec struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Version int
}

// URL joins the path with the encoded query, omitting the query string
// entirely when no optional parameters were supplied.
func (s *Spec) URL() string {
	if len(s.Query) == 0 {
		return s.Path
	}
	return s.Path + "?" + s.Query.Encode()
}

// Build assembles the Spec for ep. params are substituted into the path
// template in order after escaping; query carries the endpoint's
// optional parameters and may be nil.
func Build(ep Endpoint, auth Auth, params []string, query url.Values) (*Spec, error) {
	es, ok := endpoints[ep]
	if !ok {
		return nil, &domain.InvalidArgumentError{Reason: fmt.Sprintf("unknown endpoint %d", ep)}
	}
	if len(params) != es.params {
		return nil, &domain.InvalidArgumentError{
			Reason: fmt.Sprintf("%s requires %d path parameters, got %d", es.template, es.params, len(params)),
		}
	}

	escaped := make([]any, 0, len(params))
	for i, p := range params {
		if p == "" {
			return nil, &domain.InvalidArgumentError{
				Reason: fmt.Sprintf("empty path parameter %d for %s", i, es.template),
			}
		}
		escaped = append(escaped, escapeSegment(p))
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json; charset=UTF-8")
	headers.Set("Accept", "application/json; charset=UTF-8")
	headers.Set("X-IG-API-KEY", auth.APIKey)
	headers.Set("VERSION", strconv.Itoa(es.version))
	if ep != Login {
		headers.Set("CST", auth.CST)
		headers.Set("X-SECURITY-TOKEN", auth.SecurityToken)
	}

	return &Spec{
		Method:  es.method,
		Path:    fmt.Sprintf(es.template, escaped...),
		Query:   query,
		Headers: headers,
		Version: es.version,
	}, nil
}

// EncodeParams turns an optional-parameter map into url.Values, keys
// used verbatim.
func EncodeParams(params map[string]string) url.Values {
	if len(params) == 0 {
		return nil
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return q
}

// escapeSegment escapes one path segment but keeps commas literal so
// that multi-epic lists survive as /markets/A,B,C.
func escapeSegment(p string) string {
	parts := strings.Split(p, ",")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, ",")
}
