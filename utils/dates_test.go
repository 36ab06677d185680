package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindows(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata not available")
	}

	tests := []struct {
		name    string
		now     time.Time
		loc     *time.Location
		current [2]string
		last    [2]string
	}{
		{"mid month", time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC), time.UTC, [2]string{"2024-05-01", "2024-06-01"}, [2]string{"2024-04-01", "2024-05-01"}},
		{"january", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), time.UTC, [2]string{"2024-01-01", "2024-02-01"}, [2]string{"2023-12-01", "2024-01-01"}},
		{"december", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), time.UTC, [2]string{"2023-12-01", "2024-01-01"}, [2]string{"2023-11-01", "2023-12-01"}},
		{"month end in local zone", time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC), ist, [2]string{"2024-05-01", "2024-06-01"}, [2]string{"2024-04-01", "2024-05-01"}},
		{"march after leap february", time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC), time.UTC, [2]string{"2024-03-01", "2024-04-01"}, [2]string{"2024-02-01", "2024-03-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := CurrentMonth(tt.now, tt.loc)
			assert.Equal(t, tt.current, [2]string{cur.Start.String(), cur.End.String()})
			last := LastMonth(tt.now, tt.loc)
			assert.Equal(t, tt.last, [2]string{last.Start.String(), last.End.String()})
		})
	}
}
