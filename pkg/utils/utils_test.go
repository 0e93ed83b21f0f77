package utils

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "round to 2 decimals", input: 382.456789, want: 382.46},
		{name: "already 2 decimals", input: 59.29, want: 59.29},
		{name: "negative", input: -16.6251, want: -16.63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{name: "finite number", input: 123.45, want: true},
		{name: "infinity", input: math.Inf(1), want: false},
		{name: "negative infinity", input: math.Inf(-1), want: false},
		{name: "NaN", input: math.NaN(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.input); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlainNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{450, "450"},
		{25.5, "25.5"},
		{15.5, "15.5"},
		{0, "0"},
		{-8, "-8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := PlainNumber(tt.input); got != tt.want {
				t.Errorf("PlainNumber(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
