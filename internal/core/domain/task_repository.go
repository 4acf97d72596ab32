package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUnauthorized = errors.New("not authorized to access this resource")

	// ErrDataUnavailable is the single taxonomy kind every analytics read
	// failure collapses into. The analytics layer never retries; that policy
	// belongs to the caller.
	ErrDataUnavailable = errors.New("task data unavailable")
)

type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *Task) error

	// GetByID retrieves a task by its unique identifier.
	GetByID(ctx context.Context, id string) (*Task, error)

	// ListByUserID retrieves every task owned by a user, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*Task, error)

	// Update modifies the state of an existing task.
	Update(ctx context.Context, task *Task) error

	// Delete permanently removes a task.
	Delete(ctx context.Context, id string) error

	// CountCompletedInRange counts completed tasks whose created_at falls in
	// [from, to). The streak walk queries this day by day instead of pulling
	// a year of rows.
	CountCompletedInRange(ctx context.Context, userID string, from, to time.Time) (int, error)
}
