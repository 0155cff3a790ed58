package scoring

import (
	"testing"
)

func TestNet(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		expected  float64
	}{
		{"Typical Mix", 8, 2, 7.34},
		{"Full Marks", 10, 0, 10},
		{"All Incorrect", 0, 10, -3.3},
		{"Mid Range", 6, 3, 5.01},
		{"All Empty", 0, 0, 0},
		{"Single Incorrect", 0, 1, -0.33},
		{"Nine And One", 9, 1, 8.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Net(tt.correct, tt.incorrect)
			if got != tt.expected {
				t.Errorf("Net(%d, %d) = %v, expected %v", tt.correct, tt.incorrect, got, tt.expected)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"Rounds Up", 5.006, 5.01},
		{"Rounds Down", 5.004, 5.0},
		{"Negative", -3.3, -3.3},
		{"Already Two Places", 7.34, 7.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); got != tt.expected {
				t.Errorf("Round2(%v) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		correct   int
		incorrect int
		expected  int
	}{
		{8, 2, 0},
		{6, 3, 1},
		{0, 0, 10},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := Empty(tt.correct, tt.incorrect); got != tt.expected {
			t.Errorf("Empty(%d, %d) = %d, expected %d", tt.correct, tt.incorrect, got, tt.expected)
		}
	}
}
