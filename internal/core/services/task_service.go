package services

import (
	"context"
	"time"

	"github.com/taskhawk/taskhawk-api/internal/core/domain"
	"github.com/taskhawk/taskhawk-api/internal/core/workers"
)

type TaskService struct {
	repo   domain.TaskRepository
	worker *workers.ReminderWorker
}

func NewTaskService(repo domain.TaskRepository, worker *workers.ReminderWorker) *TaskService {
	return &TaskService{
		repo:   repo,
		worker: worker,
	}
}

type CreateTaskInput struct {
	UserID           string
	Title            string
	Description      string
	Category         string
	Priority         string
	Deadline         *time.Time
	EstimatedMinutes int
}

type UpdateTaskInput struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	Category         string
	Priority         string
	Completed        *bool
	Deadline         *time.Time
	EstimatedMinutes int
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(
		input.UserID,
		input.Title,
		input.Description,
		input.Category,
		input.Priority,
		input.Deadline,
		input.EstimatedMinutes,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	if s.worker != nil && task.Deadline != nil {
		s.worker.Enqueue(task.ID)
	}

	return task, nil
}

func (s *TaskService) ListByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Update applies a partial update. Zero-value fields keep the stored value,
// except Completed which is a tri-state pointer so false can be set.
func (s *TaskService) Update(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if task.UserID != input.UserID {
		return nil, domain.ErrTaskNotFound
	}

	title := task.Title
	if input.Title != "" {
		title = input.Title
	}
	desc := task.Description
	if input.Description != "" {
		desc = input.Description
	}
	category := task.Category
	if input.Category != "" {
		category = input.Category
	}
	priority := task.Priority
	if input.Priority != "" {
		priority = input.Priority
	}
	completed := task.Completed
	if input.Completed != nil {
		completed = *input.Completed
	}
	deadline := task.Deadline
	if input.Deadline != nil {
		deadline = input.Deadline
	}
	estimated := task.EstimatedMinutes
	if input.EstimatedMinutes > 0 {
		estimated = input.EstimatedMinutes
	}

	if err := task.Update(title, desc, category, priority, completed, deadline, estimated); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	if s.worker != nil && task.Deadline != nil && !task.Completed {
		s.worker.Enqueue(task.ID)
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string, userID string) error {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if task.UserID != userID {
		return domain.ErrTaskNotFound
	}

	return s.repo.Delete(ctx, id)
}
