package core

import (
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v is outside the unit sphere", p)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("Disk point %v has non-zero Z", p)
		}
		if p.Dot(p) >= 1.0 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}
}

func TestFloatSequenceOrder(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3}
	seq := NewFloatSequence(values)

	for i, want := range values {
		if got := seq.Next(); got != want {
			t.Errorf("Draw %d: expected %v, got %v", i, want, got)
		}
	}

	// Cursor wraps at the end
	if got := seq.Next(); got != 0.1 {
		t.Errorf("Expected wrapped draw 0.1, got %v", got)
	}
}

func TestFloatSequenceIndependentCursors(t *testing.T) {
	values := GenerateFloatSequence(64, rand.New(rand.NewSource(7)))

	first := NewFloatSequence(values)
	second := NewFloatSequence(values)
	first.Next()
	first.Next()

	// A second cursor over the same values starts at the beginning
	if got := second.Next(); got != values[0] {
		t.Errorf("Expected independent cursor to read %v, got %v", values[0], got)
	}
}

func TestGenerateFloatSequenceRange(t *testing.T) {
	values := GenerateFloatSequence(256, rand.New(rand.NewSource(1)))
	if len(values) != 256 {
		t.Fatalf("Expected 256 values, got %d", len(values))
	}
	for i, v := range values {
		if v < 0 || v >= 1 {
			t.Errorf("Value %d = %v outside [0,1)", i, v)
		}
	}
}
