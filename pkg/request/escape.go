package request

import (
	"fmt"
	"html"
)

// EscapePayload returns a deep copy of the payload with every string value
// HTML-escaped. The form engine works against this escaped copy so bound
// values can be emitted into markup directly.
func EscapePayload(payload Payload) Payload {
	if payload == nil {
		return nil
	}
	out := make(Payload, len(payload))
	for key, value := range payload {
		out[key] = escapeValue(value)
	}
	return out
}

func escapeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return html.EscapeString(v)
	case Payload:
		return EscapePayload(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = escapeValue(item)
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = html.EscapeString(item)
		}
		return out
	default:
		return html.EscapeString(fmt.Sprint(v))
	}
}
