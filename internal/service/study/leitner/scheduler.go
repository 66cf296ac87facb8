// Package leitner implements the Leitner-box review engine: scheduling,
// due selection, statistics aggregation and quiz generation. Every function
// is pure; callers own persistence and the clock.
package leitner

import (
	"time"

	"github.com/heartmarshall/leitner-backend/internal/domain"
)

// Day is the unit of Leitner intervals.
const Day = 24 * time.Hour

// intervalDays maps a box to the number of days until its next review.
var intervalDays = [domain.MaxBox + 1]int{
	1: 1,
	2: 2,
	3: 4,
	4: 8,
	5: 16,
}

// ClampBox forces box into [domain.MinBox, domain.MaxBox].
func ClampBox(box int) int {
	switch {
	case box < domain.MinBox:
		return domain.MinBox
	case box > domain.MaxBox:
		return domain.MaxBox
	default:
		return box
	}
}

// Interval returns the review interval for a box. Out-of-range boxes are clamped.
func Interval(box int) time.Duration {
	return time.Duration(intervalDays[ClampBox(box)]) * Day
}

// NextBox returns the box a card moves to after a review.
// A correct answer promotes by one (capped at MaxBox), an incorrect one
// sends the card back to MinBox.
func NextBox(box int, isCorrect bool) int {
	if !isCorrect {
		return domain.MinBox
	}
	return ClampBox(ClampBox(box) + 1)
}

// ApplyOutcome returns a copy of card with the review outcome applied:
// the box transition, NextReview = now + Interval(newBox), UpdatedAt = now.
// Content fields and ownership are left untouched.
func ApplyOutcome(card domain.Card, isCorrect bool, now time.Time) domain.Card {
	box := NextBox(card.Box, isCorrect)

	card.Box = box
	card.NextReview = now.Add(Interval(box))
	card.UpdatedAt = now

	return card
}
