package traffic

// Summarize computes aggregate metrics over a generated grid.
// The caller must ensure points is non-empty; handlers substitute a
// "no data" response instead of calling Summarize on an empty slice.
func Summarize(points []GridPoint) Summary {
	var (
		sumCurrent  float64
		sumFreeFlow float64
		sumJam      float64
		maxJam      float64
	)

	for _, p := range points {
		sumCurrent += p.CurrentSpeed
		sumFreeFlow += p.FreeFlowSpeed
		sumJam += p.JamFactor

		if p.JamFactor > maxJam {
			maxJam = p.JamFactor
		}
	}

	n := float64(len(points))

	return Summary{
		AvgCurrentSpeed:  sumCurrent / n,
		AvgFreeFlowSpeed: sumFreeFlow / n,
		AvgJamFactor:     sumJam / n,
		MaxJamFactor:     maxJam,
	}
}
