package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leitner-backend/internal/domain"
	"github.com/heartmarshall/leitner-backend/internal/service/study/leitner"
	"github.com/heartmarshall/leitner-backend/pkg/ctxutil"
)

// GetStats aggregates the caller's whole collection into a StatsSnapshot.
func (s *Service) GetStats(ctx context.Context) (domain.StatsSnapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StatsSnapshot{}, domain.ErrUnauthorized
	}

	cards, err := s.cards.List(ctx, userID, domain.CardFilter{})
	if err != nil {
		return domain.StatsSnapshot{}, fmt.Errorf("list cards: %w", err)
	}

	snap := leitner.Summarize(cards, leitner.SummaryOptions{
		AsOf:       s.now(),
		WindowDays: s.cfg.ActivityWindowDays,
		Location:   s.cfg.Location,
	})

	s.log.DebugContext(ctx, "stats computed",
		slog.String("user_id", userID.String()),
		slog.Int("total", snap.TotalCards),
		slog.Int("due", snap.DueToday),
		slog.Int("streak", snap.CurrentStreak),
	)

	return snap, nil
}
