package leitner

import (
	"math/rand"

	"github.com/heartmarshall/leitner-backend/internal/domain"
)

// Quiz defaults.
const (
	DefaultQuizSize = 10
	MaxDistractors  = 3
)

// Shuffle permutes s in place with an unbiased Fisher-Yates shuffle driven by rng.
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// SampleCards returns up to n distinct cards chosen uniformly at random
// without replacement. When n >= len(cards) every card is returned in
// random order. The input slice is not modified.
func SampleCards(rng *rand.Rand, cards []domain.Card, n int) []domain.Card {
	if n <= 0 {
		return []domain.Card{}
	}

	pool := make([]domain.Card, len(cards))
	copy(pool, cards)
	Shuffle(rng, pool)

	if n < len(pool) {
		pool = pool[:n]
	}
	return pool
}

// Mastered keeps only cards in the last box, preserving order.
func Mastered(cards []domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.IsMastered() {
			out = append(out, c)
		}
	}
	return out
}

// BuildQuiz samples up to size mastered cards and turns each into a
// multiple-choice question. Options are the correct answer plus up to
// MaxDistractors distinct answers of the other sampled cards, excluding any
// equal to the correct answer, in shuffled order. Non-mastered input cards
// are ignored. size <= 0 means DefaultQuizSize.
func BuildQuiz(rng *rand.Rand, cards []domain.Card, size int) []domain.QuizQuestion {
	if size <= 0 {
		size = DefaultQuizSize
	}

	selected := SampleCards(rng, Mastered(cards), size)
	questions := make([]domain.QuizQuestion, 0, len(selected))

	for i, c := range selected {
		options := append([]string{c.Answer}, distractors(rng, selected, i)...)
		Shuffle(rng, options)

		questions = append(questions, domain.QuizQuestion{
			CardID:        c.ID,
			Question:      c.Question,
			CorrectAnswer: c.Answer,
			Options:       options,
		})
	}

	return questions
}

// distractors picks up to MaxDistractors distinct wrong answers for
// selected[idx] from the other selected cards.
func distractors(rng *rand.Rand, selected []domain.Card, idx int) []string {
	correct := selected[idx].Answer
	seen := map[string]struct{}{correct: {}}

	candidates := make([]string, 0, len(selected)-1)
	for i, c := range selected {
		if i == idx {
			continue
		}
		if _, dup := seen[c.Answer]; dup {
			continue
		}
		seen[c.Answer] = struct{}{}
		candidates = append(candidates, c.Answer)
	}

	Shuffle(rng, candidates)
	if len(candidates) > MaxDistractors {
		candidates = candidates[:MaxDistractors]
	}
	return candidates
}
