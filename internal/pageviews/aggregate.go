package pageviews

// Summarize computes aggregate metrics over a fetched series.
// The caller must ensure records is non-empty; handlers substitute a
// "no data" response instead of calling Summarize on an empty slice.
//
// Records arrive in chronological order, so scanning with a strict greater-
// than comparison keeps the earliest day on peak ties.
func Summarize(records []Record) Summary {
	var total int64
	peak := records[0]

	for _, r := range records {
		total += r.Pageviews

		if r.Pageviews > peak.Pageviews {
			peak = r
		}
	}

	return Summary{
		TotalViews:   total,
		AvgDailyView: float64(total) / float64(len(records)),
		PeakDate:     peak.Date,
		PeakViews:    peak.Pageviews,
	}
}
