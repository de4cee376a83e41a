package validation

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

type localeDocument struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// LoadLocale reads a YAML locale document from the filesystem and registers
// it, returning the locale it declared. The document shape is:
//
//	locale: de
//	messages:
//	  required: "Dieses Feld darf nicht leer sein."
//
// Messages merge over any existing registration, so a document may override
// only a subset of keys for a built-in locale.
func LoadLocale(fsys fs.FS, path string) (Locale, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("validation: read locale %q: %w", path, err)
	}

	var doc localeDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("validation: parse locale %q: %w", path, err)
	}
	if doc.Locale == "" {
		return "", fmt.Errorf("validation: locale %q: missing locale key", path)
	}
	if len(doc.Messages) == 0 {
		return "", fmt.Errorf("validation: locale %q: no messages", path)
	}

	locale := Locale(doc.Locale)
	RegisterLocale(locale, doc.Messages)
	return locale, nil
}
