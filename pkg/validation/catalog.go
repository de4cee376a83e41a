package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Locale identifies a message catalog.
type Locale string

const (
	LocaleEN Locale = "en"
	LocalePL Locale = "pl"
)

// ErrUnsupportedLocale is returned when a catalog is requested for a locale
// that has not been registered.
var ErrUnsupportedLocale = errors.New("validation: unsupported locale")

// Message keys used by the built-in rules.
const (
	msgRequired      = "required"
	msgChecked       = "checked"
	msgLengthMin     = "length_min"
	msgLengthMax     = "length_max"
	msgEmail         = "isEmail"
	msgInteger       = "isInteger"
	msgNumeric       = "invalidNumber"
	msgDecimalPlaces = "decimalMax"
	msgEnum          = "invalidEnum"
)

var (
	localeMu sync.RWMutex
	locales  = map[Locale]map[string]string{
		LocaleEN: {
			msgRequired:      "This field cannot be empty.",
			msgChecked:       "The checkbox must be checked.",
			msgLengthMin:     "The field cannot have fewer than {length} [character,characters,characters].",
			msgLengthMax:     "The field cannot have more than {length} [character,characters,characters].",
			msgEmail:         "The provided email address is invalid.",
			msgInteger:       "The provided value must be an integer.",
			msgNumeric:       "Invalid numeric value.",
			msgDecimalPlaces: "The field may not have more than {decimal} [decimal place,decimal places,decimal places].",
			msgEnum:          "Incorrect value.",
		},
		LocalePL: {
			msgRequired:      "Pole nie może być puste.",
			msgChecked:       "Pole musi zostać zaznaczone.",
			msgLengthMin:     "Pole nie może mieć mniej niż {length} [znak,znaki,znaków].",
			msgLengthMax:     "Pole nie może mieć więcej niż {length} [znak,znaki,znaków].",
			msgEmail:         "Podany adres e-mail jest niepoprawny.",
			msgInteger:       "Podana wartość musi być liczbą całkowitą.",
			msgNumeric:       "Niepoprawna wartość liczbowa.",
			msgDecimalPlaces: "Pole nie może mieć więcej niż {decimal} [miejsce,miejsca,miejsc] po przecinku.",
			msgEnum:          "Nieprawidłowa wartość pola.",
		},
	}
)

// RegisterLocale adds or extends a message catalog. Messages merge over any
// existing registration for the locale, so partial overrides are allowed.
func RegisterLocale(locale Locale, messages map[string]string) {
	localeMu.Lock()
	defer localeMu.Unlock()

	existing, ok := locales[locale]
	if !ok {
		existing = make(map[string]string, len(messages))
		locales[locale] = existing
	}
	for key, message := range messages {
		existing[key] = message
	}
}

// ParseLocale normalises a BCP 47 tag ("pl-PL", "en_US") to a registered
// Locale using its base language.
func ParseLocale(tag string) (Locale, error) {
	parsed, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return "", fmt.Errorf("validation: parse locale %q: %w", tag, err)
	}
	base, _ := parsed.Base()

	locale := Locale(base.String())
	localeMu.RLock()
	_, ok := locales[locale]
	localeMu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, tag)
	}
	return locale, nil
}

// Catalog resolves message templates for one locale.
type Catalog struct {
	locale   Locale
	messages map[string]string
}

// NewCatalog returns the catalog for a locale, or ErrUnsupportedLocale when
// no message set is registered for it.
func NewCatalog(locale Locale) (*Catalog, error) {
	localeMu.RLock()
	source, ok := locales[locale]
	localeMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}

	messages := make(map[string]string, len(source))
	for key, message := range source {
		messages[key] = message
	}
	return &Catalog{locale: locale, messages: messages}, nil
}

// MustCatalog panics on registration failure. Useful for init-time wiring.
func MustCatalog(locale Locale) *Catalog {
	catalog, err := NewCatalog(locale)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Locale returns the catalog's locale.
func (c *Catalog) Locale() Locale {
	return c.locale
}

// Message renders the template registered under key: {param} placeholders
// are substituted from params, then the pluralization mini-language is
// applied. Unknown keys return the key itself so a misconfigured catalog is
// visible rather than silent.
func (c *Catalog) Message(key string, params map[string]any) string {
	template, ok := c.messages[key]
	if !ok {
		return key
	}
	for name, value := range params {
		template = strings.ReplaceAll(template, "{"+name+"}", fmt.Sprint(value))
	}
	return Inflect(template)
}

func defaultCatalog() *Catalog {
	return MustCatalog(LocaleEN)
}
