package traffic

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	points := []GridPoint{
		{CurrentSpeed: 20, FreeFlowSpeed: 50, JamFactor: 2},
		{CurrentSpeed: 40, FreeFlowSpeed: 60, JamFactor: 8},
		{CurrentSpeed: 30, FreeFlowSpeed: 70, JamFactor: 5},
	}

	got := Summarize(points)

	if math.Abs(got.AvgCurrentSpeed-30) > 1e-9 {
		t.Fatalf("avg currentSpeed %v, want 30", got.AvgCurrentSpeed)
	}
	if math.Abs(got.AvgFreeFlowSpeed-60) > 1e-9 {
		t.Fatalf("avg freeFlowSpeed %v, want 60", got.AvgFreeFlowSpeed)
	}
	if math.Abs(got.AvgJamFactor-5) > 1e-9 {
		t.Fatalf("avg jamFactor %v, want 5", got.AvgJamFactor)
	}
	if got.MaxJamFactor != 8 {
		t.Fatalf("max jamFactor %v, want 8", got.MaxJamFactor)
	}
}

// TestSummarizeGeneratedGrid checks the summary of a real draw stays inside
// the sampling ranges.
func TestSummarizeGeneratedGrid(t *testing.T) {
	got := Summarize(Generate())

	if got.AvgCurrentSpeed < CurrentSpeedMin || got.AvgCurrentSpeed > CurrentSpeedMax {
		t.Fatalf("avg currentSpeed %v out of range", got.AvgCurrentSpeed)
	}
	if got.AvgJamFactor < JamFactorMin || got.AvgJamFactor > JamFactorMax {
		t.Fatalf("avg jamFactor %v out of range", got.AvgJamFactor)
	}
	if got.MaxJamFactor < got.AvgJamFactor {
		t.Fatalf("max jamFactor %v below average %v", got.MaxJamFactor, got.AvgJamFactor)
	}
}
