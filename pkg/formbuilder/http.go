package formbuilder

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type redirectPayload struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// WriteResult writes a Result to an HTTP response following the partial
// protocol: partial requests receive just the form markup, or a JSON
// redirect instruction the client script follows; full-page requests
// receive the markup as an HTML fragment, or a 302.
func WriteResult(w http.ResponseWriter, result *Result) error {
	if result == nil {
		return fmt.Errorf("formbuilder: result is required")
	}

	if result.RedirectURL != "" {
		if result.Partial {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			return json.NewEncoder(w).Encode(redirectPayload{
				Type: "redirect",
				URL:  result.RedirectURL,
			})
		}
		w.Header().Set("Location", result.RedirectURL)
		w.WriteHeader(http.StatusFound)
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write([]byte(result.HTML))
	return err
}
