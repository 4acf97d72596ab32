package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhawk/taskhawk-api/internal/core/domain"
)

func TestNewCalendarEvent(t *testing.T) {
	start := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("Success with defaults", func(t *testing.T) {
		event, err := domain.NewCalendarEvent("user-1", "Standup", "", "", "", start, end)

		require.NoError(t, err)
		assert.Equal(t, domain.EventTypeEvent, event.Type)
		assert.Equal(t, domain.PriorityMedium, event.Priority)
	})

	t.Run("Fail: end before start", func(t *testing.T) {
		_, err := domain.NewCalendarEvent("user-1", "Standup", "", "", "", end, start)
		assert.ErrorIs(t, err, domain.ErrEventInvalidSpan)
	})

	t.Run("Fail: unknown type", func(t *testing.T) {
		_, err := domain.NewCalendarEvent("user-1", "Standup", "", "", "party", start, end)
		assert.ErrorIs(t, err, domain.ErrInvalidEventType)
	})
}

func TestTaskAsEvent(t *testing.T) {
	deadline := time.Date(2025, 3, 20, 17, 0, 0, 0, time.UTC)

	task, err := domain.NewTask("user-1", "Ship release", "", "work", "high", &deadline, 45)
	require.NoError(t, err)
	task.Complete()

	event := domain.TaskAsEvent(task)

	assert.Equal(t, task.ID, event.ID)
	assert.Equal(t, domain.EventTypeTask, event.Type)
	assert.Equal(t, deadline, event.Start)
	assert.Equal(t, deadline.Add(45*time.Minute), event.End)
	assert.True(t, event.Completed)
}
