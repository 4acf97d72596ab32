package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taskhawk/taskhawk-api/internal/core/domain"
)

const (
	// streakDayCap bounds the backward walk to one year of day buckets.
	streakDayCap = 365

	// streakFetchBatch is how many per-day counts are fetched concurrently
	// before the batch is folded in chronological order.
	streakFetchBatch = 30

	// moodDefault is a fixed placeholder pending a real mood-tracking signal.
	moodDefault = "productive"
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// AnalyticsService computes the dashboard summary and the five derived views
// from a user's task set. Everything is a pure read-time projection over
// created_at buckets: completion is a boolean overlay on creation-time
// buckets, there is no separate completion timestamp.
type AnalyticsService struct {
	taskRepo domain.TaskRepository
	loc      *time.Location
}

func NewAnalyticsService(taskRepo domain.TaskRepository, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{
		taskRepo: taskRepo,
		loc:      loc,
	}
}

func (s *AnalyticsService) listTasks(ctx context.Context, userID string) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}
	return tasks, nil
}

// roundPercent rounds part/whole to the nearest integer percent. A zero
// denominator yields 0, never NaN.
func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func inBucket(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func (s *AnalyticsService) Dashboard(ctx context.Context, userID string, now time.Time) (*domain.DashboardSummary, error) {
	tasks, err := s.listTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := domain.StartOfDay(now, s.loc)
	tomorrow := domain.NextDay(now, s.loc)

	var totalToday, completedToday, completedAll int
	for _, t := range tasks {
		if t.Completed {
			completedAll++
		}
		if inBucket(t.CreatedAt, today, tomorrow) {
			totalToday++
			if t.Completed {
				completedToday++
			}
		}
	}

	streak, err := s.Streak(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TodayProgress:  roundPercent(completedToday, totalToday),
		Streak:         streak,
		Mood:           moodDefault,
		CompletedTasks: completedAll,
		TotalTasks:     len(tasks),
	}, nil
}

// Streak counts consecutive days ending today on which at least one completed
// task was created. A zero count on day zero breaks the streak immediately;
// any later zero stops the walk with whatever has accumulated. Day counts are
// fetched in parallel batches, but the fold always runs in chronological
// order so the short-circuit sees days newest first.
func (s *AnalyticsService) Streak(ctx context.Context, userID string, now time.Time) (int, error) {
	today := domain.StartOfDay(now, s.loc)

	streak := 0
	for batch := 0; batch < streakDayCap; batch += streakFetchBatch {
		size := streakFetchBatch
		if batch+size > streakDayCap {
			size = streakDayCap - batch
		}

		counts := make([]int, size)
		errs := make([]error, size)

		var wg sync.WaitGroup
		for i := 0; i < size; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				dayStart := today.AddDate(0, 0, -(batch + i))
				dayEnd := dayStart.AddDate(0, 0, 1)
				counts[i], errs[i] = s.taskRepo.CountCompletedInRange(ctx, userID, dayStart, dayEnd)
			}(i)
		}
		wg.Wait()

		for i := 0; i < size; i++ {
			if errs[i] != nil {
				return 0, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, errs[i])
			}

			dayIndex := batch + i
			switch {
			case dayIndex == 0 && counts[i] == 0:
				return 0, nil
			case counts[i] > 0:
				streak++
			default:
				return streak, nil
			}
		}
	}

	return streak, nil
}

// WeeklyOverview partitions the current ISO-style week (Monday first) into
// seven day buckets and reports completed vs pending per day. Always exactly
// seven entries, Mon through Sun.
func (s *AnalyticsService) WeeklyOverview(ctx context.Context, userID string, now time.Time) ([]domain.WeeklyBucket, error) {
	tasks, err := s.listTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	monday, _ := domain.WeekRange(now, s.loc)

	overview := make([]domain.WeeklyBucket, 0, 7)
	for i, label := range weekdayLabels {
		dayStart := monday.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		bucket := domain.WeeklyBucket{Day: label}
		for _, t := range tasks {
			if !inBucket(t.CreatedAt, dayStart, dayEnd) {
				continue
			}
			if t.Completed {
				bucket.Completed++
			} else {
				bucket.Pending++
			}
		}

		overview = append(overview, bucket)
	}

	return overview, nil
}

// trendDays resolves the period selector. Only "30d" and "90d" switch away
// from the default; anything else, recognized or not, means 7 days.
func trendDays(period string) int {
	switch period {
	case "30d":
		return 30
	case "90d":
		return 90
	default:
		return 7
	}
}

// ProductivityTrend emits one point per day over the selected period, oldest
// first. Productivity is the completed share of tasks created that day.
func (s *AnalyticsService) ProductivityTrend(ctx context.Context, userID, period string, now time.Time) ([]domain.ProductivityPoint, error) {
	tasks, err := s.listTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	days := trendDays(period)
	today := domain.StartOfDay(now, s.loc)

	points := make([]domain.ProductivityPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		var completed, total int
		for _, t := range tasks {
			if !inBucket(t.CreatedAt, dayStart, dayEnd) {
				continue
			}
			total++
			if t.Completed {
				completed++
			}
		}

		points = append(points, domain.ProductivityPoint{
			Date:         dayStart.Format("Jan 2"),
			Productivity: roundPercent(completed, total),
			Completed:    completed,
			Total:        total,
		})
	}

	return points, nil
}

func displayCategory(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// CategoryDistribution groups the full task set by category, sorted by count
// descending. Ties keep insertion order. Names are capitalized for display;
// grouping itself uses the stored label.
func (s *AnalyticsService) CategoryDistribution(ctx context.Context, userID string) ([]domain.CategoryShare, error) {
	tasks, err := s.listTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, t := range tasks {
		key := t.Category
		if key == "" {
			key = domain.CategoryOther
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	shares := make([]domain.CategoryShare, 0, len(order))
	for _, key := range order {
		shares = append(shares, domain.CategoryShare{
			Name:       displayCategory(key),
			Value:      counts[key],
			Percentage: roundPercent(counts[key], len(tasks)),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Value > shares[j].Value
	})

	return shares, nil
}

// TimeDistribution buckets every task by the local hour it was created into
// four fixed slots. All four slots are always emitted, in order, even at zero.
func (s *AnalyticsService) TimeDistribution(ctx context.Context, userID string) ([]domain.TimeSlotShare, error) {
	tasks, err := s.listTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	slots := []domain.TimeSlotShare{
		{Name: "Morning (6-12)"},
		{Name: "Afternoon (12-18)"},
		{Name: "Evening (18-24)"},
		{Name: "Night (0-6)"},
	}

	for _, t := range tasks {
		hour := t.CreatedAt.In(s.loc).Hour()
		switch {
		case hour >= 6 && hour < 12:
			slots[0].Value++
		case hour >= 12 && hour < 18:
			slots[1].Value++
		case hour >= 18:
			slots[2].Value++
		default:
			slots[3].Value++
		}
	}

	return slots, nil
}

// MonthlyTrends reports the six calendar months ending with the current one,
// oldest first. Efficiency is the completed share of tasks created that month.
func (s *AnalyticsService) MonthlyTrends(ctx context.Context, userID string, now time.Time) ([]domain.MonthlyTrendPoint, error) {
	tasks, err := s.listTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := make([]domain.MonthlyTrendPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		start, end := domain.MonthRange(now, i, s.loc)

		var completed, total int
		for _, t := range tasks {
			if !inBucket(t.CreatedAt, start, end) {
				continue
			}
			total++
			if t.Completed {
				completed++
			}
		}

		points = append(points, domain.MonthlyTrendPoint{
			Month:      start.Format("Jan"),
			Completed:  completed,
			Total:      total,
			Efficiency: roundPercent(completed, total),
		})
	}

	return points, nil
}
