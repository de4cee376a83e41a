package validation_test

import (
	"strings"
	"testing"

	"github.com/nimblemvc/go-form/pkg/validation"
)

func runRule(t *testing.T, rule validation.Rule, data map[string]any) (string, bool) {
	t.Helper()
	spec := validation.NewRuleSpec().Field("field", rule)
	errs := validation.NewEngine(spec, data).Run()
	msg, failed := errs["field"]
	return msg, failed
}

func withValue(value any) map[string]any {
	return map[string]any{"field": value}
}

func TestRequired(t *testing.T) {
	cases := []struct {
		name     string
		data     map[string]any
		wantFail bool
	}{
		{name: "absent", data: map[string]any{}, wantFail: true},
		{name: "empty", data: withValue(""), wantFail: true},
		{name: "whitespace", data: withValue("   "), wantFail: true},
		{name: "zero string", data: withValue("0"), wantFail: false},
		{name: "false string", data: withValue("false"), wantFail: false},
		{name: "text", data: withValue("hello"), wantFail: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, failed := runRule(t, validation.Required(), tc.data); failed != tc.wantFail {
				t.Fatalf("required failed=%v, want %v", failed, tc.wantFail)
			}
		})
	}
}

func TestChecked(t *testing.T) {
	cases := []struct {
		name     string
		data     map[string]any
		wantFail bool
	}{
		{name: "absent", data: map[string]any{}, wantFail: true},
		{name: "empty", data: withValue(""), wantFail: true},
		{name: "zero", data: withValue("0"), wantFail: true},
		{name: "one", data: withValue("1"), wantFail: false},
		{name: "checked attr value", data: withValue("checked"), wantFail: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, failed := runRule(t, validation.Checked(), tc.data); failed != tc.wantFail {
				t.Fatalf("checked failed=%v, want %v", failed, tc.wantFail)
			}
		})
	}
}

func TestLength(t *testing.T) {
	if _, failed := runRule(t, validation.Length(3, 5), withValue("abcd")); failed {
		t.Fatal("in-range value should pass")
	}
	if _, failed := runRule(t, validation.MinLength(5), withValue("abc")); !failed {
		t.Fatal("short value should fail min bound")
	}
	if _, failed := runRule(t, validation.MaxLength(2), withValue("abc")); !failed {
		t.Fatal("long value should fail max bound")
	}

	// Minimum is reported before maximum when both would fail.
	msg, failed := runRule(t, validation.Length(5, 2), withValue("abc"))
	if !failed || !strings.Contains(msg, "fewer") {
		t.Fatalf("expected min-bound message, got %q", msg)
	}
}

func TestLength_Pluralization(t *testing.T) {
	// Slavic plural-count selection over the PL tri-form word list.
	catalog := validation.MustCatalog(validation.LocalePL)

	cases := []struct {
		min  int
		want string
	}{
		{min: 1, want: "1 znak"},
		{min: 2, want: "2 znaki"},
		{min: 3, want: "3 znaki"},
		{min: 4, want: "4 znaki"},
		{min: 5, want: "5 znaków"},
		{min: 11, want: "11 znaków"},
		{min: 12, want: "12 znaków"},
		{min: 14, want: "14 znaków"},
		{min: 21, want: "21 znak"},
		{min: 22, want: "22 znaki"},
		{min: 25, want: "25 znaków"},
		{min: 112, want: "112 znaków"},
		{min: 104, want: "104 znaki"},
	}

	for _, tc := range cases {
		spec := validation.NewRuleSpec().Field("field", validation.MinLength(tc.min))
		errs := validation.NewEngine(spec, withValue(""), validation.WithCatalog(catalog)).Run()
		msg := errs["field"]
		if !strings.Contains(msg, tc.want) {
			t.Errorf("min=%d: message %q does not contain %q", tc.min, msg, tc.want)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		value    string
		wantFail bool
	}{
		{value: "user@example.com", wantFail: false},
		{value: "jan.kowalski@firma.pl", wantFail: false},
		{value: "invalid", wantFail: true},
		{value: "a@", wantFail: true},
		{value: "", wantFail: true},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			if _, failed := runRule(t, validation.Email(), withValue(tc.value)); failed != tc.wantFail {
				t.Fatalf("email(%q) failed=%v, want %v", tc.value, failed, tc.wantFail)
			}
		})
	}
}

func TestInteger(t *testing.T) {
	if _, failed := runRule(t, validation.Integer(), withValue("42")); failed {
		t.Fatal("integer should pass")
	}
	if _, failed := runRule(t, validation.Integer(), withValue("-7")); failed {
		t.Fatal("negative integer should pass")
	}
	if _, failed := runRule(t, validation.Integer(), withValue("12.5")); !failed {
		t.Fatal("decimal should fail integer rule")
	}
	if _, failed := runRule(t, validation.Integer(), withValue("abc")); !failed {
		t.Fatal("text should fail integer rule")
	}
}

func TestDecimal(t *testing.T) {
	cases := []struct {
		name      string
		value     string
		maxPlaces int
		wantFail  bool
	}{
		{name: "comma normalized", value: "12,5", wantFail: false},
		{name: "three places over default", value: "12.555", wantFail: true},
		{name: "not numeric", value: "abc", wantFail: true},
		{name: "no fraction", value: "12", wantFail: false},
		{name: "exact default places", value: "12.55", wantFail: false},
		{name: "custom limit", value: "1.234", maxPlaces: 3, wantFail: false},
		{name: "over custom limit", value: "1.2345", maxPlaces: 3, wantFail: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, failed := runRule(t, validation.Decimal(tc.maxPlaces), withValue(tc.value)); failed != tc.wantFail {
				t.Fatalf("decimal(%q) failed=%v, want %v", tc.value, failed, tc.wantFail)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	rule := validation.OneOf("DRAFT", "PUBLISHED", "ARCHIVED")

	if _, failed := runRule(t, rule, withValue("DRAFT")); failed {
		t.Fatal("known case name should pass")
	}
	if msg, failed := runRule(t, rule, withValue("deleted")); !failed || msg != "Incorrect value." {
		t.Fatalf("unknown case should fail with enum message, got %q", msg)
	}
}
