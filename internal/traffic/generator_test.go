package traffic

import (
	"math"
	"testing"
)

// TestGenerateGridShape verifies the generator emits one point per cell of
// the 15x15 grid with coordinates on the expected lattice.
func TestGenerateGridShape(t *testing.T) {
	points := Generate()

	if len(points) != GridSize*GridSize {
		t.Fatalf("expected %d points, got %d", GridSize*GridSize, len(points))
	}

	lats := linspace(LatMin, LatMax, GridSize)
	lons := linspace(LonMin, LonMax, GridSize)

	latSet := make(map[float64]bool, len(lats))
	for _, v := range lats {
		latSet[v] = true
	}
	lonSet := make(map[float64]bool, len(lons))
	for _, v := range lons {
		lonSet[v] = true
	}

	for i, p := range points {
		if !latSet[p.Lat] {
			t.Fatalf("point %d: lat %v is not on the lattice", i, p.Lat)
		}
		if !lonSet[p.Lon] {
			t.Fatalf("point %d: lon %v is not on the lattice", i, p.Lon)
		}
	}
}

// TestGenerateSamplingRanges verifies every sampled field stays inside its
// documented range.
func TestGenerateSamplingRanges(t *testing.T) {
	for _, p := range Generate() {
		if p.CurrentSpeed < CurrentSpeedMin || p.CurrentSpeed > CurrentSpeedMax {
			t.Fatalf("currentSpeed %v out of range", p.CurrentSpeed)
		}
		if p.FreeFlowSpeed < FreeFlowSpeedMin || p.FreeFlowSpeed > FreeFlowSpeedMax {
			t.Fatalf("freeFlowSpeed %v out of range", p.FreeFlowSpeed)
		}
		if p.JamFactor < JamFactorMin || p.JamFactor > JamFactorMax {
			t.Fatalf("jamFactor %v out of range", p.JamFactor)
		}
		if p.Confidence < ConfidenceMin || p.Confidence > ConfidenceMax {
			t.Fatalf("confidence %v out of range", p.Confidence)
		}
	}
}

// TestLinspaceEndpoints verifies the lattice spans the bounds exactly with
// even spacing.
func TestLinspaceEndpoints(t *testing.T) {
	vals := linspace(LatMin, LatMax, GridSize)

	if len(vals) != GridSize {
		t.Fatalf("expected %d values, got %d", GridSize, len(vals))
	}
	if vals[0] != LatMin {
		t.Fatalf("first value %v, want %v", vals[0], LatMin)
	}
	if vals[len(vals)-1] != LatMax {
		t.Fatalf("last value %v, want %v", vals[len(vals)-1], LatMax)
	}

	step := (LatMax - LatMin) / float64(GridSize-1)
	for i := 1; i < len(vals); i++ {
		if diff := vals[i] - vals[i-1]; math.Abs(diff-step) > 1e-9 {
			t.Fatalf("uneven spacing at %d: %v, want %v", i, diff, step)
		}
	}
}
