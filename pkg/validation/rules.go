package validation

import (
	"net/mail"
	"strconv"
	"strings"
)

// Rule is a single check applied to a bound field value. A failing rule
// returns a *Failure; any other error is treated the same way, carrying the
// error text as the field message.
type Rule interface {
	Validate(value Value, messages *Catalog) error
}

// RuleFunc adapts an arbitrary predicate into a Rule. The predicate signals
// failure by returning Fail(...)/Failf(...); it receives the bound value and
// is responsible for its own message text.
type RuleFunc func(value Value) error

func (fn RuleFunc) Validate(value Value, _ *Catalog) error {
	return fn(value)
}

type requiredRule struct{}

// Required fails when the value is absent or, once trimmed, empty.
func Required() Rule { return requiredRule{} }

func (requiredRule) Validate(value Value, messages *Catalog) error {
	if !value.Present || value.Trimmed() == "" {
		return Fail(messages.Message(msgRequired, nil))
	}
	return nil
}

type checkedRule struct{}

// Checked fails when the trimmed value is falsy; used for must-check
// checkboxes.
func Checked() Rule { return checkedRule{} }

func (checkedRule) Validate(value Value, messages *Catalog) error {
	if !value.Truthy() {
		return Fail(messages.Message(msgChecked, nil))
	}
	return nil
}

type lengthRule struct {
	min int
	max int
}

// Length constrains string length. A bound of 0 means unconstrained; the
// minimum is checked before the maximum.
func Length(min, max int) Rule { return lengthRule{min: min, max: max} }

// MinLength constrains only the lower bound.
func MinLength(min int) Rule { return Length(min, 0) }

// MaxLength constrains only the upper bound.
func MaxLength(max int) Rule { return Length(0, max) }

func (r lengthRule) Validate(value Value, messages *Catalog) error {
	length := len(value.String())
	if r.min > 0 && length < r.min {
		return Fail(messages.Message(msgLengthMin, map[string]any{"length": r.min}))
	}
	if r.max > 0 && length > r.max {
		return Fail(messages.Message(msgLengthMax, map[string]any{"length": r.max}))
	}
	return nil
}

type emailRule struct{}

// Email fails unless the value parses as a syntactically valid address.
func Email() Rule { return emailRule{} }

func (emailRule) Validate(value Value, messages *Catalog) error {
	address := value.Trimmed()
	if address == "" {
		return Fail(messages.Message(msgEmail, nil))
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return Fail(messages.Message(msgEmail, nil))
	}
	return nil
}

type integerRule struct{}

// Integer fails unless the value parses as an integer.
func Integer() Rule { return integerRule{} }

func (integerRule) Validate(value Value, messages *Catalog) error {
	if _, err := strconv.Atoi(value.Trimmed()); err != nil {
		return Fail(messages.Message(msgInteger, nil))
	}
	return nil
}

type decimalRule struct {
	maxPlaces int
}

// DefaultDecimalPlaces is the fractional digit limit applied when Decimal is
// constructed with a non-positive limit.
const DefaultDecimalPlaces = 2

// Decimal normalizes a decimal comma to a period and fails when the result
// is not numeric or its fractional part has more than maxPlaces digits.
func Decimal(maxPlaces int) Rule {
	if maxPlaces <= 0 {
		maxPlaces = DefaultDecimalPlaces
	}
	return decimalRule{maxPlaces: maxPlaces}
}

func (r decimalRule) Validate(value Value, messages *Catalog) error {
	normalized := strings.ReplaceAll(value.Trimmed(), ",", ".")
	if _, err := strconv.ParseFloat(normalized, 64); err != nil {
		return Fail(messages.Message(msgNumeric, nil))
	}

	_, fraction, found := strings.Cut(normalized, ".")
	if !found {
		return nil
	}
	if len(fraction) > r.maxPlaces {
		return Fail(messages.Message(msgDecimalPlaces, map[string]any{"decimal": r.maxPlaces}))
	}
	return nil
}

type oneOfRule struct {
	names map[string]struct{}
}

// OneOf fails unless the value's string form matches one of the supplied
// case names. It mirrors enum-backed fields where the valid set is fixed and
// supplied externally.
func OneOf(names ...string) Rule {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return oneOfRule{names: set}
}

func (r oneOfRule) Validate(value Value, messages *Catalog) error {
	if _, ok := r.names[value.String()]; !ok {
		return Fail(messages.Message(msgEnum, nil))
	}
	return nil
}
