package page

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestBody(t *testing.T) {
	tests := []struct {
		name     string
		variant  Variant
		expected string
	}{
		{
			name:     "Plain heading",
			variant:  VariantPlain,
			expected: "<h1>Python webpage!</h1>\n",
		},
		{
			name:     "Styled heading",
			variant:  VariantStyled,
			expected: "\n<style>\nbody {\n  background-color: lightblue;\n  font-family: \"Comic Sans MS\", cursive;\n}\n</style>\n<h1>Python webpage!</h1>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := Body(tt.variant)
			if err != nil {
				t.Fatalf("Body(%q) returned error: %v", tt.variant, err)
			}
			if string(body) != tt.expected {
				t.Errorf("Body(%q) = %q, want %q", tt.variant, body, tt.expected)
			}
			if !utf8.Valid(body) {
				t.Errorf("Body(%q) is not valid UTF-8", tt.variant)
			}
		})
	}
}

func TestBody_UnknownVariant(t *testing.T) {
	body, err := Body(Variant("fancy"))
	if err == nil {
		t.Fatal("Expected error for unknown variant, got nil")
	}
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
	if body != nil {
		t.Errorf("Expected nil body, got %q", body)
	}
}

func TestBody_ReturnsCopy(t *testing.T) {
	first, err := Body(VariantPlain)
	if err != nil {
		t.Fatalf("Body returned error: %v", err)
	}
	first[0] = 'X'

	second, err := Body(VariantPlain)
	if err != nil {
		t.Fatalf("Body returned error: %v", err)
	}
	if string(second) != Plain {
		t.Errorf("Body was mutated through a previous result: %q", second)
	}
}

func TestVariants(t *testing.T) {
	variants := Variants()
	if len(variants) != 2 {
		t.Fatalf("Expected 2 variants, got %d", len(variants))
	}
	if variants[0] != VariantPlain || variants[1] != VariantStyled {
		t.Errorf("Unexpected variant order: %v", variants)
	}
	for _, v := range variants {
		if _, err := Body(v); err != nil {
			t.Errorf("Variant %q has no body: %v", v, err)
		}
	}
}
