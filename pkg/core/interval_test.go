package core

import (
	"math"
	"testing"

	"pgregory.net/rand"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	i := NewInterval(0, 1)

	tests := []struct {
		value     float64
		contains  bool
		surrounds bool
	}{
		{-0.5, false, false},
		{0, true, false},
		{0.5, true, true},
		{1, true, false},
		{1.5, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.value); got != tt.contains {
			t.Errorf("Contains(%v): expected %t, got %t", tt.value, tt.contains, got)
		}
		if got := i.Surrounds(tt.value); got != tt.surrounds {
			t.Errorf("Surrounds(%v): expected %t, got %t", tt.value, tt.surrounds, got)
		}
	}
}

func TestInterval_Empty(t *testing.T) {
	if !EmptyInterval.IsEmpty() {
		t.Error("Expected EmptyInterval to be empty")
	}
	if EmptyInterval.Size() >= 0 {
		t.Errorf("Expected negative size for empty interval, got %f", EmptyInterval.Size())
	}
	if EmptyInterval.Contains(0) || EmptyInterval.Surrounds(0) {
		t.Error("Empty interval should contain nothing")
	}
	if !UniverseInterval.Surrounds(1e300) {
		t.Error("Universe interval should surround any finite value")
	}
}

func TestInterval_ClampProperties(t *testing.T) {
	random := rand.New(7)

	for n := 0; n < 1000; n++ {
		a := random.Float64()*200 - 100
		b := random.Float64()*200 - 100
		i := NewInterval(math.Min(a, b), math.Max(a, b))
		v := random.Float64()*400 - 200

		clamped := i.Clamp(v)
		if !i.Contains(clamped) {
			t.Fatalf("Clamp(%v) = %v escapes %v", v, clamped, i)
		}
		if i.Contains(v) && clamped != v {
			t.Fatalf("Clamp(%v) = %v, expected identity inside %v", v, clamped, i)
		}
	}
}

func TestInterval_Union(t *testing.T) {
	got := NewInterval(0, 1).Union(NewInterval(-2, 0.5))
	if got != NewInterval(-2, 1) {
		t.Errorf("Expected [-2,1], got %v", got)
	}
	if got := EmptyInterval.Union(NewInterval(3, 4)); got != NewInterval(3, 4) {
		t.Errorf("Expected empty to be the union identity, got %v", got)
	}
}
