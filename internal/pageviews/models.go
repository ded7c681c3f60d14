package pageviews

import (
	"fmt"
	"time"

	"github.com/akarpov91/traffic-analytics/internal/common"
)

// Record is one day of pageview traffic for an article.
type Record struct {
	Date      time.Time `json:"date"` // midnight UTC calendar day
	Pageviews int64     `json:"pageviews"`
}

// DateRange is an inclusive calendar-day window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate checks the range invariants: start must not be after end, and
// neither bound may lie in the future.
func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start date is after end date", ErrInvalidInput)
	}
	if today := common.Today(); r.End.After(today) || r.Start.After(today) {
		return fmt.Errorf("%w: date range may not extend past today", ErrInvalidInput)
	}
	return nil
}

// Summary holds aggregate metrics over one fetched series.
type Summary struct {
	TotalViews   int64     `json:"totalViews"`
	AvgDailyView float64   `json:"avgDailyViews"`
	PeakDate     time.Time `json:"peakDate"`
	PeakViews    int64     `json:"peakViews"`
}
