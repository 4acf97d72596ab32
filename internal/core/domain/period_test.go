package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhawk/taskhawk-api/internal/core/domain"
)

func TestStartOfDay(t *testing.T) {
	loc := time.UTC

	at := time.Date(2025, 3, 15, 14, 30, 45, 123456789, loc)
	got := domain.StartOfDay(at, loc)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, loc), got)
}

func TestNextDay(t *testing.T) {
	loc := time.UTC

	at := time.Date(2025, 3, 15, 23, 59, 59, 0, loc)
	got := domain.NextDay(at, loc)

	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, loc), got)
}

func TestEndOfDay(t *testing.T) {
	loc := time.UTC

	at := time.Date(2025, 3, 15, 1, 0, 0, 0, loc)
	got := domain.EndOfDay(at, loc)

	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999e6, loc), got)
}

func TestWeekRange(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name       string
		at         time.Time
		wantMonday time.Time
	}{
		{
			name:       "Wednesday mid-week",
			at:         time.Date(2025, 3, 12, 10, 0, 0, 0, loc),
			wantMonday: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name:       "Monday is its own week start",
			at:         time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
			wantMonday: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name:       "Sunday closes the week it concludes",
			at:         time.Date(2025, 3, 16, 12, 0, 0, 0, loc),
			wantMonday: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
		{
			name:       "Saturday",
			at:         time.Date(2025, 3, 15, 23, 0, 0, 0, loc),
			wantMonday: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := domain.WeekRange(tt.at, loc)

			assert.Equal(t, tt.wantMonday, start)
			assert.Equal(t, time.Monday, start.Weekday())

			wantEnd := tt.wantMonday.AddDate(0, 0, 6)
			assert.Equal(t, time.Date(wantEnd.Year(), wantEnd.Month(), wantEnd.Day(), 23, 59, 59, 999e6, loc), end)
			assert.Equal(t, time.Sunday, end.Weekday())
		})
	}
}

func TestMonthRange(t *testing.T) {
	loc := time.UTC
	at := time.Date(2025, 3, 15, 12, 0, 0, 0, loc)

	t.Run("Current month", func(t *testing.T) {
		start, end := domain.MonthRange(at, 0, loc)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, loc), start)
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, loc), end)
	})

	t.Run("Five months ago crosses the year boundary", func(t *testing.T) {
		start, end := domain.MonthRange(at, 5, loc)
		assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, loc), start)
		assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, loc), end)
	})

	t.Run("End is exclusive start of the following month", func(t *testing.T) {
		start, end := domain.MonthRange(time.Date(2025, 1, 31, 23, 0, 0, 0, loc), 0, loc)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), start)
		assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, loc), end)
	})
}
