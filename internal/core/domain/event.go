package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEventTitleEmpty  = errors.New("event title cannot be empty")
	ErrEventInvalidSpan = errors.New("event end must be after start")
	ErrInvalidEventType = errors.New("invalid event type (must be event, meeting, or reminder)")
)

const (
	EventTypeEvent    = "event"
	EventTypeMeeting  = "meeting"
	EventTypeReminder = "reminder"

	// EventTypeTask marks deadline-bearing tasks projected into the calendar
	// feed. It is never stored, only emitted.
	EventTypeTask = "task"
)

type CalendarEvent struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Start       time.Time `json:"start" db:"start_at"`
	End         time.Time `json:"end" db:"end_at"`
	Priority    string    `json:"priority" db:"priority"`
	Type        string    `json:"type" db:"type"`
	Completed   bool      `json:"completed,omitempty" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func validateEventType(t string) (string, error) {
	if t == "" {
		return EventTypeEvent, nil
	}
	switch t {
	case EventTypeEvent, EventTypeMeeting, EventTypeReminder:
		return t, nil
	default:
		return "", ErrInvalidEventType
	}
}

func NewCalendarEvent(userID, title, description, priority, eventType string, start, end time.Time) (*CalendarEvent, error) {
	if userID == "" {
		return nil, ErrTaskInvalidUserID
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrEventTitleEmpty
	}

	if !end.After(start) {
		return nil, ErrEventInvalidSpan
	}

	safePriority, err := validatePriority(priority)
	if err != nil {
		return nil, err
	}

	safeType, err := validateEventType(eventType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &CalendarEvent{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       trimmed,
		Description: strings.TrimSpace(description),
		Start:       start,
		End:         end,
		Priority:    safePriority,
		Type:        safeType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (e *CalendarEvent) Update(title, description, priority, eventType string, start, end time.Time) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEventTitleEmpty
	}

	if !end.After(start) {
		return ErrEventInvalidSpan
	}

	safePriority, err := validatePriority(priority)
	if err != nil {
		return err
	}

	safeType, err := validateEventType(eventType)
	if err != nil {
		return err
	}

	e.Title = trimmed
	e.Description = strings.TrimSpace(description)
	e.Start = start
	e.End = end
	e.Priority = safePriority
	e.Type = safeType
	e.UpdatedAt = time.Now().UTC()

	return nil
}

// TaskAsEvent projects a deadline-bearing task into the calendar feed. The
// block spans from the deadline for the task's estimated duration.
func TaskAsEvent(t *Task) *CalendarEvent {
	minutes := t.EstimatedMinutes
	if minutes <= 0 {
		minutes = DefaultEstimatedMinutes
	}

	return &CalendarEvent{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Start:       *t.Deadline,
		End:         t.Deadline.Add(time.Duration(minutes) * time.Minute),
		Priority:    t.Priority,
		Type:        EventTypeTask,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
