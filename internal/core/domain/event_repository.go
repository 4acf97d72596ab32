package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEventNotFound = errors.New("calendar event not found")
)

type EventRepository interface {
	// Create persists a new calendar event.
	Create(ctx context.Context, event *CalendarEvent) error

	// GetByID retrieves a single event by its ID.
	GetByID(ctx context.Context, id string) (*CalendarEvent, error)

	// ListByUserID retrieves all events for a user ordered by start time.
	ListByUserID(ctx context.Context, userID string) ([]*CalendarEvent, error)

	// ListByUserIDAndRange retrieves events fully contained in [from, to].
	ListByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*CalendarEvent, error)

	// Update modifies an existing event.
	Update(ctx context.Context, event *CalendarEvent) error

	// Delete permanently removes an event.
	Delete(ctx context.Context, id string) error
}
