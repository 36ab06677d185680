package utils

import (
	"time"

	"mktrading-backend/models"
)

// Window is a half-open calendar range [Start, End).
type Window struct {
	Start models.Date
	End   models.Date
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// CurrentMonth is the calendar month containing now, as seen in loc.
func CurrentMonth(now time.Time, loc *time.Location) Window {
	start := models.NewDate(BeginningOfMonth(now.In(loc)))
	return Window{Start: start, End: start.AddMonths(1)}
}

// LastMonth is the calendar month before the one containing now.
func LastMonth(now time.Time, loc *time.Location) Window {
	end := models.NewDate(BeginningOfMonth(now.In(loc)))
	return Window{Start: end.AddMonths(-1), End: end}
}
