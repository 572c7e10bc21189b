package normalize

import (
	"testing"
	"time"
)

func TestForMatch(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{
			name:  "collapses and trims whitespace",
			value: "\nHello   World\n",
			want:  "hello world",
		},
		{
			name:  "removes diacritics",
			value: "Héllò",
			want:  "hello",
		},
		{
			name:  "formats timestamps as calendar days",
			value: time.Date(2022, 6, 22, 12, 0, 0, 0, time.UTC),
			want:  "2022-06-22",
		},
		{
			name:  "rounds numbers to two decimals",
			value: 1.999,
			want:  2.0,
		},
		{
			name:  "keeps two-decimal numbers",
			value: 1.99,
			want:  1.99,
		},
		{
			name:  "keeps negative integers",
			value: -100.0,
			want:  -100.0,
		},
		{
			name:  "passes other values through",
			value: true,
			want:  true,
		},
		{
			name:  "passes nil through",
			value: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForMatch(tt.value)
			if got != tt.want {
				t.Errorf("ForMatch(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestForMatchIdempotent(t *testing.T) {
	values := []any{
		"  Crème   Brûlée  ",
		"already normal",
		1.005,
		time.Date(2023, 11, 8, 23, 59, 0, 0, time.UTC),
	}

	for _, v := range values {
		once := ForMatch(v)
		twice := ForMatch(once)
		if once != twice {
			t.Errorf("ForMatch not idempotent for %v: first %v, second %v", v, once, twice)
		}
	}
}
