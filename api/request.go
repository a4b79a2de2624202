package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Request is the normalized form every handler receives: trimmed path,
// lowercased method, flattened query and a JSON payload that is always
// a map, even when the body was empty or malformed.
type Request struct {
	Path    string
	Method  string
	Query   map[string]string
	Headers http.Header
	Payload map[string]any
}

// Normalize turns a raw inbound request into its canonical form.
// Body parsing never fails the request; anything that isn't a JSON
// object becomes an empty payload.
func Normalize(r *http.Request) *Request {
	query := make(map[string]string)
	for key, vals := range r.URL.Query() {
		// Repeated keys: the last occurrence wins
		if len(vals) > 0 {
			query[key] = vals[len(vals)-1]
		}
	}

	payload := make(map[string]any)
	if r.Body != nil {
		if b, err := io.ReadAll(r.Body); err == nil && len(b) > 0 {
			if err := json.Unmarshal(b, &payload); err != nil {
				payload = make(map[string]any)
			}
		}
	}

	return &Request{
		Path:    strings.Trim(r.URL.Path, "/"),
		Method:  strings.ToLower(r.Method),
		Query:   query,
		Headers: r.Header,
		Payload: payload,
	}
}

// Token returns the bearer token id sent with the request.
func (r *Request) Token() string {
	return r.Headers.Get("token")
}

// Has reports whether key was present in the request payload.
func (r *Request) Has(key string) bool {
	_, ok := r.Payload[key]
	return ok
}

// String returns the trimmed string value under key, or "" if the key
// is absent or not a string.
func (r *Request) String(key string) string {
	s, _ := r.Payload[key].(string)
	return strings.TrimSpace(s)
}

// Bool returns the boolean value under key, or false.
func (r *Request) Bool(key string) bool {
	b, _ := r.Payload[key].(bool)
	return b
}

// Int returns the value under key if it is a whole JSON number.
func (r *Request) Int(key string) (int, bool) {
	f, ok := r.Payload[key].(float64)
	if !ok || f != float64(int(f)) {
		return 0, false
	}

	return int(f), true
}

// Ints returns the value under key as a slice of whole JSON numbers.
// Any non-integer element makes the whole slice invalid.
func (r *Request) Ints(key string) ([]int, bool) {
	raw, ok := r.Payload[key].([]any)
	if !ok {
		return nil, false
	}

	out := make([]int, 0, len(raw))
	for _, v := range raw {
		f, ok := v.(float64)
		if !ok || f != float64(int(f)) {
			return nil, false
		}

		out = append(out, int(f))
	}

	return out, true
}
