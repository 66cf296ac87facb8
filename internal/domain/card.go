package domain

import (
	"time"

	"github.com/google/uuid"
)

// Leitner box bounds. A card always lives in one of the boxes MinBox..MaxBox.
const (
	MinBox = 1
	MaxBox = 5
)

// DefaultCategory is assigned to cards created without a category.
const DefaultCategory = "General"

// Card is a question/answer flashcard scheduled with the Leitner system.
type Card struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Question   string
	Answer     string
	Category   string
	Box        int
	NextReview time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsDue returns true if the card needs review at the given time (NextReview <= now).
func (c *Card) IsDue(now time.Time) bool {
	return !c.NextReview.After(now)
}

// IsMastered reports whether the card has reached the last box.
func (c *Card) IsMastered() bool {
	return c.Box == MaxBox
}

// ReviewOutcome is the result of a single recall attempt.
type ReviewOutcome struct {
	CardID    uuid.UUID
	IsCorrect bool
}

// CardFilter narrows card listings.
type CardFilter struct {
	// Category, when non-nil, keeps only cards in that category.
	Category *string
}

// CardContentUpdate carries the editable card fields. Nil fields are left unchanged.
// Box and NextReview are not editable; only a review moves a card.
type CardContentUpdate struct {
	Question  *string
	Answer    *string
	Category  *string
	UpdatedAt time.Time
}
