package services

import (
	"context"
	"sort"
	"time"

	"github.com/taskhawk/taskhawk-api/internal/core/domain"
)

type CalendarService struct {
	eventRepo domain.EventRepository
	taskRepo  domain.TaskRepository
}

func NewCalendarService(eventRepo domain.EventRepository, taskRepo domain.TaskRepository) *CalendarService {
	return &CalendarService{
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
	}
}

type CreateEventInput struct {
	UserID      string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Priority    string
	Type        string
}

type UpdateEventInput struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Priority    string
	Type        string
}

func (s *CalendarService) Create(ctx context.Context, input CreateEventInput) (*domain.CalendarEvent, error) {
	event, err := domain.NewCalendarEvent(
		input.UserID,
		input.Title,
		input.Description,
		input.Priority,
		input.Type,
		input.Start,
		input.End,
	)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// ListEvents returns the user's calendar feed: stored events plus every
// deadline-bearing task projected as a synthetic "task" entry. When a range
// is given both sources are filtered to it.
func (s *CalendarService) ListEvents(ctx context.Context, userID string, from, to *time.Time) ([]*domain.CalendarEvent, error) {
	var events []*domain.CalendarEvent
	var err error

	if from != nil && to != nil {
		events, err = s.eventRepo.ListByUserIDAndRange(ctx, userID, *from, *to)
	} else {
		events, err = s.eventRepo.ListByUserID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if t.Deadline == nil {
			continue
		}
		if from != nil && to != nil {
			if t.Deadline.Before(*from) || t.Deadline.After(*to) {
				continue
			}
		}
		events = append(events, domain.TaskAsEvent(t))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return events, nil
}

func (s *CalendarService) Update(ctx context.Context, input UpdateEventInput) (*domain.CalendarEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if event.UserID != input.UserID {
		return nil, domain.ErrEventNotFound
	}

	title := event.Title
	if input.Title != "" {
		title = input.Title
	}
	desc := event.Description
	if input.Description != "" {
		desc = input.Description
	}
	start := event.Start
	if !input.Start.IsZero() {
		start = input.Start
	}
	end := event.End
	if !input.End.IsZero() {
		end = input.End
	}
	priority := event.Priority
	if input.Priority != "" {
		priority = input.Priority
	}
	eventType := event.Type
	if input.Type != "" {
		eventType = input.Type
	}

	if err := event.Update(title, desc, priority, eventType, start, end); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *CalendarService) Delete(ctx context.Context, id string, userID string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if event.UserID != userID {
		return domain.ErrEventNotFound
	}

	return s.eventRepo.Delete(ctx, id)
}
