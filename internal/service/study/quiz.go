package study

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/heartmarshall/leitner-backend/internal/domain"
	"github.com/heartmarshall/leitner-backend/internal/service/study/leitner"
	"github.com/heartmarshall/leitner-backend/pkg/ctxutil"
)

// GetMasteredCards returns a random sample of the caller's box-5 cards.
func (s *Service) GetMasteredCards(ctx context.Context, input MasteredInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MasteredLimitMax); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.MasteredLimit
	}

	mastered, err := s.cards.ListByBox(ctx, userID, domain.MaxBox)
	if err != nil {
		return nil, fmt.Errorf("list mastered cards: %w", err)
	}

	var sample []domain.Card
	s.withRand(func(rng *rand.Rand) {
		sample = leitner.SampleCards(rng, mastered, limit)
	})

	return sample, nil
}

// GetQuiz builds a multiple-choice quiz over the caller's mastered cards.
func (s *Service) GetQuiz(ctx context.Context, input QuizInput) ([]domain.QuizQuestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MasteredLimitMax); err != nil {
		return nil, err
	}

	size := input.Size
	if size == 0 {
		size = s.cfg.QuizSize
	}

	mastered, err := s.cards.ListByBox(ctx, userID, domain.MaxBox)
	if err != nil {
		return nil, fmt.Errorf("list mastered cards: %w", err)
	}

	var quiz []domain.QuizQuestion
	s.withRand(func(rng *rand.Rand) {
		quiz = leitner.BuildQuiz(rng, mastered, size)
	})

	return quiz, nil
}
