package utils

import "testing"

func TestCeilToCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{10, 10},
		{149.995, 150.00},
		{10.001, 10.01},
		{12.34, 12.34},
		{90 / 0.9, 100.00}, // float noise just above an exact cent stays put
	}

	for _, tt := range tests {
		if got := CeilToCents(tt.in); got != tt.want {
			t.Errorf("CeilToCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 5,00"},
		{1234.5, "R$ 1.234,50"},
		{162.5, "R$ 162,50"},
		{1000000, "R$ 1.000.000,00"},
		{-99.9, "-R$ 99,90"},
	}

	for _, tt := range tests {
		if got := FormatBRL(tt.in); got != tt.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
