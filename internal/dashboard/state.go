package dashboard

import (
	"fmt"
	"time"

	"github.com/akarpov91/traffic-analytics/internal/common"
	"github.com/akarpov91/traffic-analytics/internal/pageviews"
)

// ViewMode selects which of the two mutually exclusive pipelines a render
// cycle executes.
type ViewMode string

const (
	ModeSyntheticTraffic ViewMode = "synthetic-traffic"
	ModeWikipediaTraffic ViewMode = "wikipedia-traffic"
)

// Valid reports whether the mode is one of the two known pipelines.
func (m ViewMode) Valid() bool {
	return m == ModeSyntheticTraffic || m == ModeWikipediaTraffic
}

// State is the immutable snapshot of a session's dashboard inputs. Pipelines
// receive it as an explicit argument; there is no ambient mutable UI state.
type State struct {
	Mode    ViewMode  `json:"mode"`
	Article string    `json:"article"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// Range returns the state's date window as a pageviews range.
func (s State) Range() pageviews.DateRange {
	return pageviews.DateRange{Start: s.Start, End: s.End}
}

// Validate checks state invariants shared by both pipelines.
func (s State) Validate() error {
	if !s.Mode.Valid() {
		return fmt.Errorf("unknown view mode %q", s.Mode)
	}
	if s.Mode == ModeWikipediaTraffic {
		if s.Article == "" {
			return fmt.Errorf("article title is required")
		}
		if err := s.Range().Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultState builds the initial inputs for a fresh session: the default
// article over a trailing window of windowDays ending today, both bounds
// capped at today.
func DefaultState(article string, windowDays int) State {
	today := common.Today()
	start, end := common.TrailingWindow(today, windowDays)

	return State{
		Mode:    ModeSyntheticTraffic,
		Article: article,
		Start:   common.ClampToDay(start, today),
		End:     common.ClampToDay(end, today),
	}
}
