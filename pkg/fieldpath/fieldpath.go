// Package fieldpath resolves slash-delimited field paths. A path such as
// "user/address/city" addresses a location inside a nested submission payload
// and doubles as the source for the HTML field name ("user[address][city]")
// and the camel-cased element identifier ("userAddressCity").
package fieldpath

import (
	"strings"
)

// Delimiter separates path segments.
const Delimiter = "/"

// FieldName converts a path into an HTML-compatible bracketed field name.
// The first segment becomes the base name and every remaining segment is
// appended as a bracketed suffix:
//
//	FieldName("user/address/city", "") == "user[address][city]"
//
// A leading delimiter is a formatting directive rather than a data segment:
// it is stripped and forces the prefix to end with the delimiter, signalling
// an absolute field name outside the normal nesting.
func FieldName(path, prefix string) string {
	if strings.HasPrefix(path, Delimiter) {
		path = strings.TrimPrefix(path, Delimiter)
		prefix += Delimiter
	}

	first, rest, nested := strings.Cut(path, Delimiter)
	name := prefix + first
	if !nested {
		return name
	}

	var b strings.Builder
	b.WriteString(name)
	for _, segment := range strings.Split(rest, Delimiter) {
		b.WriteString("[")
		b.WriteString(segment)
		b.WriteString("]")
	}
	return b.String()
}

// ElementID converts a path into a camel-cased identifier. Every segment is
// lowercased; the first segment is used as-is and each subsequent segment has
// its leading character uppercased:
//
//	ElementID("user/address/city") == "userAddressCity"
func ElementID(path string) string {
	var b strings.Builder
	for _, segment := range strings.Split(path, Delimiter) {
		segment = strings.ToLower(segment)
		if b.Len() == 0 {
			b.WriteString(segment)
			continue
		}
		b.WriteString(upperFirst(segment))
	}
	return b.String()
}

// Segments splits a path on the delimiter, trims each segment, and drops the
// empty ones. The result is the lookup chain used by Resolve.
func Segments(path string) []string {
	if path == "" {
		return nil
	}

	parts := strings.Split(path, Delimiter)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		out = append(out, segment)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Resolve performs a structural lookup of path inside a nested payload. It
// returns the value at the end of the segment chain, or ok=false when the
// path is empty, the payload is empty, or any segment is missing. Lookup is
// a plain map traversal; path segments are never evaluated as code.
func Resolve(path string, payload map[string]any) (any, bool) {
	segments := Segments(path)
	if len(segments) == 0 || len(payload) == 0 {
		return nil, false
	}

	current := any(payload)
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok := node[segment]
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
