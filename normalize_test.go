package lemmaru

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"кот", "кот"},
		{"Кот", "кот"},
		{"КОШКОЮ", "кошкою"},
		{"«Программисткою».", "программисткою"},
		{"123кот456", "кот"},
		{"кот,", "кот"},
		{"  мама  ", "мама"},
		// NFC: е + combining diaeresis composes to ё
		{"планёр", "планёр"},
		{"...", ""},
		{"42", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"кот", "Кот.", "«Программисткою»", "планёр",
		"123кот456", "не-кот", "...", "",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
