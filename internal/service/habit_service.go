package service

import (
	"context"
	"time"

	"studyhub-service/internal/models"

	"github.com/google/uuid"
)

// HabitService owns the habit streak rules: completing today extends the
// streak, un-completing takes it back, and a missed scheduled day resets
// it on the next daily rollover.
type HabitService struct {
	Habits HabitStore
}

// HabitStats is the aggregate view across a learner's habits.
type HabitStats struct {
	TotalHabits    int `json:"total_habits"`
	ActiveToday    int `json:"active_today"`
	CompletedToday int `json:"completed_today"`
	LongestStreak  int `json:"longest_streak"`
}

func NewHabitService(habits HabitStore) *HabitService {
	return &HabitService{Habits: habits}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ListHabits returns the learner's habits with streaks rolled forward to
// today: a habit whose last scheduled day went uncompleted drops to zero.
func (s *HabitService) ListHabits(ctx context.Context, userID string) ([]models.Habit, error) {
	habits, err := s.Habits.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range habits {
		if rolled := rollForward(&habits[i], now); rolled {
			if err := s.Habits.Save(ctx, &habits[i]); err != nil {
				return nil, err
			}
		}
	}
	return habits, nil
}

// rollForward resets the streak when yesterday was scheduled but not
// completed. Returns true when the habit changed.
func rollForward(habit *models.Habit, now time.Time) bool {
	yesterday := now.AddDate(0, 0, -1)
	if !habit.ActiveOn(yesterday.Weekday()) {
		return false
	}
	record := habit.RecordFor(dayKey(yesterday))
	if record != nil && record.Completed {
		return false
	}
	if habit.Streak == 0 {
		return false
	}
	habit.Streak = 0
	return true
}

func (s *HabitService) CreateHabit(ctx context.Context, habit *models.Habit) error {
	habit.ID = uuid.NewString()
	habit.CreatedAt = time.Now()
	habit.Streak = 0
	if len(habit.Frequency.Days) == 0 {
		habit.Frequency = models.HabitFrequency{
			Type: "daily",
			Days: []int{0, 1, 2, 3, 4, 5, 6},
		}
	}
	return s.Habits.Create(ctx, habit)
}

// ToggleCompletion flips today's record for a habit. Completing bumps
// the streak; un-completing walks it back without going negative.
func (s *HabitService) ToggleCompletion(ctx context.Context, habitID string) (*models.Habit, error) {
	habit, err := s.Habits.FindByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	today := dayKey(time.Now())
	record := habit.RecordFor(today)
	if record == nil {
		habit.History = append([]models.HabitRecord{{Date: today}}, habit.History...)
		record = &habit.History[0]
	}

	record.Completed = !record.Completed
	if record.Completed {
		habit.Streak++
	} else if habit.Streak > 0 {
		habit.Streak--
	}

	if err := s.Habits.Save(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) DeleteHabit(ctx context.Context, habitID string) error {
	return s.Habits.Delete(ctx, habitID)
}

// Stats aggregates today's schedule and completion across all habits.
func (s *HabitService) Stats(ctx context.Context, userID string) (*HabitStats, error) {
	habits, err := s.ListHabits(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := dayKey(now)
	stats := &HabitStats{TotalHabits: len(habits)}
	for i := range habits {
		if habits[i].ActiveOn(now.Weekday()) {
			stats.ActiveToday++
		}
		if record := habits[i].RecordFor(today); record != nil && record.Completed {
			stats.CompletedToday++
		}
		if habits[i].Streak > stats.LongestStreak {
			stats.LongestStreak = habits[i].Streak
		}
	}
	return stats, nil
}
