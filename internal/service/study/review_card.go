package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leitner-backend/internal/domain"
	"github.com/heartmarshall/leitner-backend/internal/service/study/leitner"
	"github.com/heartmarshall/leitner-backend/pkg/ctxutil"
)

// ReviewCard applies a review outcome to a card and persists the new schedule.
// The card row is locked for the duration of the transaction, so concurrent
// reviews of the same card are applied one after another.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	isCorrect := *input.IsCorrect
	var before, after *domain.Card

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByIDForUpdate(txCtx, userID, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		before = card

		next := leitner.ApplyOutcome(*card, isCorrect, s.now().UTC())

		after, err = s.cards.UpdateSchedule(txCtx, userID, next)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", after.ID.String()),
		slog.Bool("is_correct", isCorrect),
		slog.Int("old_box", before.Box),
		slog.Int("new_box", after.Box),
		slog.Time("next_review", after.NextReview),
	)

	return after, nil
}
