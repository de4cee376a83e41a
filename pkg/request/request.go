// Package request defines the contract the form engine expects from the
// surrounding HTTP layer: nested query/post payloads, an AJAX marker, and
// single-key query access. An *http.Request adapter and a static in-memory
// implementation are provided.
package request

import (
	"net/http"
	"strings"
)

// Payload is a nested mapping from string keys to scalar values or further
// payloads. It is the read-only snapshot the form core traverses.
type Payload = map[string]any

// Request supplies raw submission data to the form engine. Implementations
// must return already-deserialized nested structures; the core never parses
// wire formats itself.
type Request interface {
	// AllQuery returns the full query string payload.
	AllQuery() Payload
	// AllPost returns the full posted-form payload.
	AllPost() Payload
	// Query returns a single flat query parameter, or fallback when absent.
	Query(key, fallback string) string
	// IsAjax reports whether the request was made asynchronously.
	IsAjax() bool
	// URI returns the request target used as the default form action.
	URI() string
}

type httpRequest struct {
	r     *http.Request
	query Payload
	post  Payload
}

// FromHTTP adapts a standard *http.Request. Query and posted-form values are
// parsed once at construction; bracketed keys ("user[address][city]") expand
// into nested payloads the way PHP-style form encoders produce them.
func FromHTTP(r *http.Request) Request {
	req := &httpRequest{r: r}
	if r == nil {
		return req
	}

	req.query = ParseValues(r.URL.Query())

	if err := r.ParseForm(); err == nil {
		req.post = ParseValues(r.PostForm)
	}
	return req
}

func (h *httpRequest) AllQuery() Payload { return h.query }

func (h *httpRequest) AllPost() Payload { return h.post }

func (h *httpRequest) Query(key, fallback string) string {
	if h.r == nil {
		return fallback
	}
	if value := h.r.URL.Query().Get(key); value != "" {
		return value
	}
	return fallback
}

func (h *httpRequest) IsAjax() bool {
	if h.r == nil {
		return false
	}
	return h.r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

func (h *httpRequest) URI() string {
	if h.r == nil {
		return ""
	}
	return h.r.URL.RequestURI()
}

// Static is an in-memory Request, useful in tests and non-HTTP callers.
type Static struct {
	QueryData Payload
	PostData  Payload
	Ajax      bool
	Target    string
}

func (s *Static) AllQuery() Payload { return s.QueryData }

func (s *Static) AllPost() Payload { return s.PostData }

func (s *Static) Query(key, fallback string) string {
	value, ok := s.QueryData[key]
	if !ok {
		return fallback
	}
	str, ok := value.(string)
	if !ok || str == "" {
		return fallback
	}
	return str
}

func (s *Static) IsAjax() bool { return s.Ajax }

func (s *Static) URI() string { return s.Target }

// ParseValues expands flat url.Values-style data into a nested Payload.
// A key of the form "a[b][c]" nests under a→b→c; an empty bracket pair
// ("tags[]") appends to a slice. Repeated scalar keys keep the last value.
func ParseValues(values map[string][]string) Payload {
	if len(values) == 0 {
		return Payload{}
	}

	out := Payload{}
	for key, list := range values {
		segments := bracketSegments(key)
		if len(segments) == 0 {
			continue
		}
		for _, value := range list {
			assign(out, segments, value)
		}
	}
	return out
}

func bracketSegments(key string) []string {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}

	open := strings.IndexByte(key, '[')
	if open < 0 {
		return []string{key}
	}

	segments := []string{key[:open]}
	rest := key[open:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			// Malformed suffix, treat the remainder as literal.
			segments[len(segments)-1] += rest
			break
		}
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			segments[len(segments)-1] += rest
			break
		}
		segments = append(segments, rest[1:close])
		rest = rest[close+1:]
	}
	return segments
}

func assign(node Payload, segments []string, value string) {
	head := segments[0]
	if len(segments) == 1 {
		node[head] = value
		return
	}

	next := segments[1]
	if next == "" {
		// "key[]" appends to a slice.
		list, _ := node[head].([]any)
		node[head] = append(list, value)
		return
	}

	child, ok := node[head].(Payload)
	if !ok {
		child = Payload{}
		node[head] = child
	}
	assign(child, segments[1:], value)
}
