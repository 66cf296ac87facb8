package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/leitner-backend/internal/domain"
	"github.com/heartmarshall/leitner-backend/internal/service/study/leitner"
	"github.com/heartmarshall/leitner-backend/pkg/ctxutil"
)

// GetDueCards returns the caller's cards due now, lowest box first.
func (s *Service) GetDueCards(ctx context.Context) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()

	cards, err := s.cards.ListDue(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}

	return leitner.SelectDue(cards, now), nil
}
