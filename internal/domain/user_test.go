package domain

import "testing"

func TestFirstName(t *testing.T) {
	cases := map[string]string{
		"Ana Silva":        "Ana",
		"Ana":              "Ana",
		"Maria Clara Reis": "Maria",
		"":                 "",
		" Ana":             "",
	}
	for in, want := range cases {
		if got := FirstName(in); got != want {
			t.Fatalf("FirstName(%q) = %q, want %q", in, got, want)
		}
	}
}
