package numeric

import (
	"context"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestRangeContains(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		v    float64
		want bool
	}{
		{"open both sides", Range{}, 1e300, true},
		{"within closed range", Range{Min: ptr(0), Max: ptr(100)}, 50, true},
		{"below min", Range{Min: ptr(0), Max: ptr(100)}, -1, false},
		{"above max", Range{Min: ptr(0), Max: ptr(100)}, 101, false},
		{"bounds inclusive", Range{Min: ptr(0), Max: ptr(100)}, 100, true},
		{"open max", Range{Min: ptr(0)}, 1e300, true},
		{"open min", Range{Max: ptr(0)}, -1e300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.AllowDecimalSeparator || !s.AllowNegative || !s.AllowExponent {
		t.Errorf("DefaultStyle() = %+v, want all character classes permitted", s)
	}
	if s.Range != nil {
		t.Errorf("DefaultStyle() has range %+v, want none", s.Range)
	}
}

func TestFilterAll(t *testing.T) {
	t.Run("keeps input order", func(t *testing.T) {
		inputs := []string{"1-2-3", "abc", "", "1.2.3", "1e5"}
		want := []string{"-123", "", "", "1.23", "1E5"}

		got := FilterAll(context.Background(), inputs, DefaultStyle())
		if len(got) != len(want) {
			t.Fatalf("FilterAll returned %d results, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("FilterAll[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := FilterAll(context.Background(), nil, DefaultStyle()); len(got) != 0 {
			t.Errorf("FilterAll(nil) = %v, want empty", got)
		}
	})
}
