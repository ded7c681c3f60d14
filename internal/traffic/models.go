package traffic

// Sampling area: a small rectangle over lower Manhattan. The grid is not tied
// to any real road segment; it only anchors the simulated readings on a map.
const (
	LatMin = 40.70
	LatMax = 40.80
	LonMin = -74.02
	LonMax = -73.93

	// GridSize is the number of samples along each axis.
	GridSize = 15
)

// Sampling ranges for the simulated readings.
const (
	CurrentSpeedMin  = 10.0
	CurrentSpeedMax  = 60.0
	FreeFlowSpeedMin = 40.0
	FreeFlowSpeedMax = 70.0
	JamFactorMin     = 0.0
	JamFactorMax     = 10.0
	ConfidenceMin    = 0.5
	ConfidenceMax    = 1.0
)

// GridPoint is one simulated traffic reading at a grid location.
// Speeds are km/h; jamFactor is a 0-10 congestion severity score.
type GridPoint struct {
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	CurrentSpeed  float64 `json:"currentSpeed"`
	FreeFlowSpeed float64 `json:"freeFlowSpeed"`
	JamFactor     float64 `json:"jamFactor"`
	Confidence    float64 `json:"confidence"`
}

// Summary holds aggregate metrics over one generated grid.
type Summary struct {
	AvgCurrentSpeed  float64 `json:"avgCurrentSpeed"`
	AvgFreeFlowSpeed float64 `json:"avgFreeFlowSpeed"`
	AvgJamFactor     float64 `json:"avgJamFactor"`
	MaxJamFactor     float64 `json:"maxJamFactor"`
}
