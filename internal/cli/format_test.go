package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1_500, "$1.5K"},
		{1_234_567, "$1.2M"},
		{1_234_567_890, "$1.2B"},
		{-2_500_000, "$-2.5M"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45678, "-45,678"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMillions(t *testing.T) {
	if got := FormatMillions(2_345_678_901); got != "$2,346M" {
		t.Errorf("FormatMillions = %q, want $2,346M", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(12.345); got != "12.3%" {
		t.Errorf("FormatPercent = %q, want 12.3%%", got)
	}
}

func TestFormatYear(t *testing.T) {
	if got := FormatYear(2025); got != "2025" {
		t.Errorf("FormatYear(2025) = %q", got)
	}
	if got := FormatYear(0); got != "????" {
		t.Errorf("FormatYear(0) = %q, want ????", got)
	}
}
