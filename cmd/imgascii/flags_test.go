// ABOUTME: Tests for positional argument interpretation
// ABOUTME: Verifies the lenient width fallback and the invert token

package main

import "testing"

func TestParseWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"80", 80},
		{"1", 1},
		{"0", 120},
		{"-5", 120},
		{"abc", 120},
		{"12.5", 120},
		{"120abc", 120},
		{"", 120},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := parseWidth(tt.in, 120); got != tt.want {
				t.Errorf("parseWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWidth_UsesGivenDefault(t *testing.T) {
	t.Parallel()

	if got := parseWidth("nope", 72); got != 72 {
		t.Errorf("parseWidth fallback = %d, want 72", got)
	}
}

func TestInvertToken(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"inv", "invert"} {
		if !invertToken(s) {
			t.Errorf("invertToken(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "INV", "inverse", "invertx", "color"} {
		if invertToken(s) {
			t.Errorf("invertToken(%q) = true, want false", s)
		}
	}
}
