package traffic

import "math/rand"

// Generate produces a fresh GridSize x GridSize grid of simulated readings,
// one per cross-product of evenly spaced latitudes and longitudes. Every call
// is an independent random draw; nothing is seeded or persisted.
func Generate() []GridPoint {
	lats := linspace(LatMin, LatMax, GridSize)
	lons := linspace(LonMin, LonMax, GridSize)

	points := make([]GridPoint, 0, GridSize*GridSize)
	for _, lat := range lats {
		for _, lon := range lons {
			points = append(points, GridPoint{
				Lat:           lat,
				Lon:           lon,
				CurrentSpeed:  uniform(CurrentSpeedMin, CurrentSpeedMax),
				FreeFlowSpeed: uniform(FreeFlowSpeedMin, FreeFlowSpeedMax),
				JamFactor:     uniform(JamFactorMin, JamFactorMax),
				Confidence:    uniform(ConfidenceMin, ConfidenceMax),
			})
		}
	}
	return points
}

// linspace returns n evenly spaced values from min to max inclusive.
func linspace(min, max float64, n int) []float64 {
	if n == 1 {
		return []float64{min}
	}
	step := (max - min) / float64(n-1)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = min + float64(i)*step
	}
	// Pin the last value to avoid float drift past the bound.
	vals[n-1] = max
	return vals
}

func uniform(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
