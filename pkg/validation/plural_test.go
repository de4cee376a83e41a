package validation_test

import (
	"testing"

	"github.com/nimblemvc/go-form/pkg/validation"
)

func TestInflect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{name: "one", text: "1 [znak,znaki,znaków]", want: "1 znak"},
		{name: "few", text: "3 [znak,znaki,znaków]", want: "3 znaki"},
		{name: "many", text: "5 [znak,znaki,znaków]", want: "5 znaków"},
		{name: "zero", text: "0 [znak,znaki,znaków]", want: "0 znaków"},
		{name: "teens", text: "13 [znak,znaki,znaków]", want: "13 znaków"},
		{name: "twenty one", text: "21 [znak,znaki,znaków]", want: "21 znak"},
		{name: "embedded", text: "Pole nie może mieć mniej niż 2 [znak,znaki,znaków].", want: "Pole nie może mieć mniej niż 2 znaki."},
		{name: "multiple occurrences", text: "2 [a,b,c] i 5 [a,b,c]", want: "2 b i 5 c"},
		{name: "spaced forms", text: "2 [decimal place, decimal places]", want: "2 decimal places"},
		{name: "short form list clamps", text: "5 [place,places]", want: "5 places"},
		{name: "no brackets untouched", text: "plain text", want: "plain text"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validation.Inflect(tc.text); got != tc.want {
				t.Fatalf("Inflect(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
