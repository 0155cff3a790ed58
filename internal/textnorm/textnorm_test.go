package textnorm

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"Uppercase Dotless I", "Ahmet YILMAZ", "ahmet yılmaz"},
		{"Uppercase Dotted I", "İSTANBUL", "istanbul"},
		{"Mixed Case", "Ayşe Demir", "ayşe demir"},
		{"Leading Trailing Space", "  Mehmet Can  ", "mehmet can"},
		{"Inner Whitespace Run", "LGS   Deneme\t1", "lgs deneme 1"},
		{"Empty", "", ""},
		{"Only Whitespace", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Ahmet YILMAZ", "  8/A ", "LGS Deneme 1", "ıİiI"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"Ahmet YILMAZ", "ahmet yılmaz", true},
		{"8/A", "8/a", true},
		{"Ali  Veli", "Ali Veli", true},
		{"Ali Veli", "Veli Ali", false},
	}

	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.expected {
			t.Errorf("Equal(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.expected)
		}
	}
}
