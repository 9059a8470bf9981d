package parse

import "testing"

func TestIntOrZero(t *testing.T) {
	if got := IntOrZero("42"); got != 42 {
		t.Errorf("IntOrZero(42) = %d", got)
	}
	if got := IntOrZero("nope"); got != 0 {
		t.Errorf("IntOrZero(nope) = %d", got)
	}
}

func TestCountOrZero(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"42", 42},
		{" 42 ", 42},
		{"1.2k", 1200},
		{"3K", 3000},
		{"3.5万", 35000},
		{"1w", 10000},
		{"2W", 20000},
		{"-5", 0},
		{"赞", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := CountOrZero(tt.in); got != tt.want {
			t.Errorf("CountOrZero(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
