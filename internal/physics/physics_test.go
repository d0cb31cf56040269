package physics

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := DistanceSquared(1, 1, 4, 5); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want bool
	}{
		{"inside", 9.9, true},
		{"touching", 10, false},
		{"apart", 10.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(0, 0, 4, tt.d, 0, 6); got != tt.want {
				t.Errorf("CirclesOverlap(d=%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestWrapPosition(t *testing.T) {
	tests := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{800.5, 10, 0.5, 10},
		{-1, -1, 799, 599},
		{400, 300, 400, 300},
		{1600, 1200, 0, 0},
	}
	for _, tt := range tests {
		x, y := tt.x, tt.y
		WrapPosition(&x, &y, 800, 600)
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("WrapPosition(%v,%v) = (%v,%v), want (%v,%v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestRotatePoint(t *testing.T) {
	x, y := RotatePoint(1, 0, 0, 0, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("RotatePoint = (%v,%v), want (0,1)", x, y)
	}
	hx, hy := Heading(-math.Pi / 2)
	if math.Abs(hx) > 1e-9 || math.Abs(hy+1) > 1e-9 {
		t.Errorf("Heading(-π/2) = (%v,%v), want (0,-1)", hx, hy)
	}
}

func TestRandomBetweenExcluding(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v, err := RandomBetweenExcluding(rng, 0, 800, 340, 460, DefaultMaxAttempts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v < 0 || v >= 800 {
			t.Fatalf("value %v outside [0, 800)", v)
		}
		if v > 340 && v < 460 {
			t.Fatalf("value %v inside excluded range", v)
		}
	}
}

func TestRandomBetweenExcludingUngenerateable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	if _, err := RandomBetweenExcluding(rng, 0, 100, -10, 110, 5); !errors.Is(err, ErrUngenerateablePosition) {
		t.Errorf("fully excluded range: err = %v, want ErrUngenerateablePosition", err)
	}

	// A sliver of valid range with a tiny budget eventually gives up instead of looping.
	failures := 0
	for i := 0; i < 100; i++ {
		if _, err := RandomBetweenExcluding(rng, 0, 100, 0, 99.999, 1); err != nil {
			failures++
		}
	}
	if failures == 0 {
		t.Error("expected bounded sampling to report failures")
	}
}
