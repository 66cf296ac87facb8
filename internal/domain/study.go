package domain

import "github.com/google/uuid"

// BoxStat is the number of cards currently in one Leitner box.
type BoxStat struct {
	Box   int
	Count int
}

// StatsSnapshot is the aggregated study state of a card collection at a moment.
type StatsSnapshot struct {
	TotalCards    int
	DueToday      int
	ReviewedToday int
	// TodayProgress is a percentage in [0, 100].
	TodayProgress int
	CurrentStreak int
	BoxStats      []BoxStat
	// ActivityByDate maps a calendar date (YYYY-MM-DD) to the number of
	// cards last modified on that date.
	ActivityByDate map[string]int
}

// QuizQuestion is one multiple-choice question built from a mastered card.
type QuizQuestion struct {
	CardID        uuid.UUID
	Question      string
	CorrectAnswer string
	Options       []string
}
