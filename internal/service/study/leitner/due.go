package leitner

import (
	"cmp"
	"slices"
	"time"

	"github.com/heartmarshall/leitner-backend/internal/domain"
)

// SelectDue returns the cards whose NextReview is at or before asOf,
// ordered by ascending box. Cards in the same box keep their input order.
// The input slice is not modified.
func SelectDue(cards []domain.Card, asOf time.Time) []domain.Card {
	due := make([]domain.Card, 0, len(cards))
	for i := range cards {
		if cards[i].IsDue(asOf) {
			due = append(due, cards[i])
		}
	}

	slices.SortStableFunc(due, func(a, b domain.Card) int {
		return cmp.Compare(a.Box, b.Box)
	})

	return due
}
