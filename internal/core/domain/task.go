package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTaskTitleEmpty    = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong  = errors.New("task title is too long (max 140 chars)")
	ErrTaskDescTooLong   = errors.New("task description is too long (max 2000 chars)")
	ErrTaskInvalidUserID = errors.New("invalid user id")
	ErrInvalidPriority   = errors.New("invalid priority (must be low, medium, or high)")
	ErrInvalidDeadline   = errors.New("deadline cannot be in the past")
	ErrInvalidEstimate   = errors.New("estimated time cannot be negative")
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	CategoryWork      = "work"
	CategoryPersonal  = "personal"
	CategoryHealth    = "health"
	CategoryEducation = "education"
	CategoryFinance   = "finance"
	CategoryOther     = "other"

	MaxTaskTitleLen = 140
	MaxTaskDescLen  = 2000

	DefaultEstimatedMinutes = 30
)

type Task struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	Category    string     `json:"category" db:"category"`
	Priority    string     `json:"priority" db:"priority"`
	Completed   bool       `json:"completed" db:"completed"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	// EstimatedMinutes sizes the calendar block for deadline-bearing tasks.
	EstimatedMinutes int       `json:"estimated_time" db:"estimated_minutes"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// NormalizeCategory maps any free-text label onto the closed category set.
// Unknown or empty values collapse to "other".
func NormalizeCategory(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case CategoryWork:
		return CategoryWork
	case CategoryPersonal:
		return CategoryPersonal
	case CategoryHealth:
		return CategoryHealth
	case CategoryEducation:
		return CategoryEducation
	case CategoryFinance:
		return CategoryFinance
	default:
		return CategoryOther
	}
}

func validatePriority(p string) (string, error) {
	if p == "" {
		return PriorityMedium, nil
	}
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", ErrInvalidPriority
	}
}

func validateTaskFields(title, desc string, estimated int) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTaskTitleEmpty
	}
	if len(trimmed) > MaxTaskTitleLen {
		return "", ErrTaskTitleTooLong
	}
	if len(strings.TrimSpace(desc)) > MaxTaskDescLen {
		return "", ErrTaskDescTooLong
	}
	if estimated < 0 {
		return "", ErrInvalidEstimate
	}
	return trimmed, nil
}

func NewTask(userID, title, description, category, priority string, deadline *time.Time, estimatedMinutes int) (*Task, error) {
	if userID == "" {
		return nil, ErrTaskInvalidUserID
	}

	cleanTitle, err := validateTaskFields(title, description, estimatedMinutes)
	if err != nil {
		return nil, err
	}

	safePriority, err := validatePriority(priority)
	if err != nil {
		return nil, err
	}

	if estimatedMinutes == 0 {
		estimatedMinutes = DefaultEstimatedMinutes
	}

	now := time.Now().UTC()

	return &Task{
		ID:               uuid.New().String(),
		UserID:           userID,
		Title:            cleanTitle,
		Description:      strings.TrimSpace(description),
		Category:         NormalizeCategory(category),
		Priority:         safePriority,
		Completed:        false,
		Deadline:         deadline,
		EstimatedMinutes: estimatedMinutes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Update replaces the mutable fields. CreatedAt is never touched: it is the
// time axis every analytics bucket hangs off, and moving it would silently
// rewrite history.
func (t *Task) Update(title, description, category, priority string, completed bool, deadline *time.Time, estimatedMinutes int) error {
	cleanTitle, err := validateTaskFields(title, description, estimatedMinutes)
	if err != nil {
		return err
	}

	safePriority, err := validatePriority(priority)
	if err != nil {
		return err
	}

	if estimatedMinutes == 0 {
		estimatedMinutes = DefaultEstimatedMinutes
	}

	t.Title = cleanTitle
	t.Description = strings.TrimSpace(description)
	t.Category = NormalizeCategory(category)
	t.Priority = safePriority
	t.Completed = completed
	t.Deadline = deadline
	t.EstimatedMinutes = estimatedMinutes
	t.UpdatedAt = time.Now().UTC()

	return nil
}

func (t *Task) Complete() {
	if t.Completed {
		return
	}
	t.Completed = true
	t.UpdatedAt = time.Now().UTC()
}

func (t *Task) Reopen() {
	if !t.Completed {
		return
	}
	t.Completed = false
	t.UpdatedAt = time.Now().UTC()
}
