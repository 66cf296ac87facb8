package leitner

import (
	"math"
	"time"

	"github.com/heartmarshall/leitner-backend/internal/domain"
)

// DefaultWindowDays is how far back activity is tracked when no window is given.
const DefaultWindowDays = 30

// SummaryOptions parametrize Summarize.
type SummaryOptions struct {
	// AsOf is the evaluation instant ("now").
	AsOf time.Time
	// WindowDays bounds the activity history. Zero or negative means DefaultWindowDays.
	WindowDays int
	// Location defines calendar-day boundaries. Nil means UTC.
	Location *time.Location
}

func (o SummaryOptions) normalized() SummaryOptions {
	if o.WindowDays <= 0 {
		o.WindowDays = DefaultWindowDays
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return o
}

// Summarize aggregates a card collection into a StatsSnapshot.
// It never fails; an empty collection yields zero counts, 100% progress
// and an empty activity map.
func Summarize(cards []domain.Card, opts SummaryOptions) domain.StatsSnapshot {
	opts = opts.normalized()
	tz := opts.Location

	todayStart := DayStart(opts.AsOf, tz)
	tomorrowStart := AddDays(todayStart, 1, tz)
	windowStart := AddDays(todayStart, -opts.WindowDays, tz)

	snap := domain.StatsSnapshot{
		TotalCards:     len(cards),
		BoxStats:       make([]domain.BoxStat, domain.MaxBox),
		ActivityByDate: make(map[string]int),
	}
	for i := range snap.BoxStats {
		snap.BoxStats[i].Box = i + domain.MinBox
	}

	for i := range cards {
		c := &cards[i]

		snap.BoxStats[ClampBox(c.Box)-domain.MinBox].Count++

		if c.IsDue(opts.AsOf) {
			snap.DueToday++
		}

		if inRange(c.UpdatedAt, todayStart, tomorrowStart) {
			snap.ReviewedToday++
		}

		if inRange(c.UpdatedAt, windowStart, tomorrowStart) {
			snap.ActivityByDate[DateKey(c.UpdatedAt, tz)]++
		}
	}

	snap.TodayProgress = TodayProgress(snap.ReviewedToday, snap.DueToday)
	snap.CurrentStreak = Streak(snap.ActivityByDate, todayStart, tz)

	return snap
}

// TodayProgress returns the share of due cards reviewed today as a rounded
// percentage. Nothing due, or at least as many reviews as due cards, is 100.
func TodayProgress(reviewed, due int) int {
	if due == 0 || reviewed >= due {
		return 100
	}
	return int(math.Round(float64(reviewed) * 100 / float64(due)))
}

// Streak counts consecutive active days ending today. An inactive today yields 0.
func Streak(activity map[string]int, todayStart time.Time, tz *time.Location) int {
	streak := 0
	day := todayStart
	for activity[DateKey(day, tz)] > 0 {
		streak++
		day = AddDays(day, -1, tz)
	}
	return streak
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
