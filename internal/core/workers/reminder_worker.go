package workers

import (
	"context"
	"log"
	"time"

	"github.com/taskhawk/taskhawk-api/internal/core/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
}

// Notifier delivers deadline reminders. The production wiring logs them;
// a push or email channel can slot in without touching the worker.
type Notifier interface {
	Notify(ctx context.Context, task *domain.Task) error
}

type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, task *domain.Task) error {
	log.Printf("Reminder: task %q (user %s) is due at %s", task.Title, task.UserID, task.Deadline.Format(time.RFC3339))
	return nil
}

type ReminderJob struct {
	TaskID string
}

// ReminderWorker watches deadline-bearing tasks in the background. Task
// writes enqueue the task ID; the worker reloads it and notifies when the
// deadline falls inside the notice window and the task is still open.
type ReminderWorker struct {
	taskRepo TaskRepository
	notifier Notifier
	notice   time.Duration
	jobs     chan ReminderJob
}

func NewReminderWorker(repo TaskRepository, notifier Notifier, notice time.Duration) *ReminderWorker {
	return &ReminderWorker{
		taskRepo: repo,
		notifier: notifier,
		notice:   notice,
		jobs:     make(chan ReminderJob, 100),
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Reminder Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Reminder Worker shutting down...")
				return
			}
		}
	}()
}

func (w *ReminderWorker) Enqueue(taskID string) {
	select {
	case w.jobs <- ReminderJob{TaskID: taskID}:
	default:
		log.Printf("Reminder Worker queue full! Dropping job for task %s", taskID)
	}
}

func (w *ReminderWorker) processJob(ctx context.Context, job ReminderJob) {
	task, err := w.taskRepo.GetByID(ctx, job.TaskID)
	if err != nil {
		log.Printf("Worker Error fetching task %s: %v", job.TaskID, err)
		return
	}

	if !w.dueSoon(task, time.Now()) {
		return
	}

	if err := w.notifier.Notify(ctx, task); err != nil {
		log.Printf("Worker Failed to notify for task %s: %v", task.ID, err)
	}
}

func (w *ReminderWorker) dueSoon(task *domain.Task, now time.Time) bool {
	if task.Completed || task.Deadline == nil {
		return false
	}
	if task.Deadline.Before(now) {
		return false
	}
	return task.Deadline.Sub(now) <= w.notice
}
