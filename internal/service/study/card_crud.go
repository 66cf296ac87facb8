package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/leitner-backend/internal/domain"
	"github.com/heartmarshall/leitner-backend/pkg/ctxutil"
)

// CreateCard creates a card in box 1 that is due immediately.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	card, err := s.cards.Create(ctx, &domain.Card{
		ID:         uuid.New(),
		UserID:     userID,
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Box:        domain.MinBox,
		NextReview: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("category", card.Category),
	)

	return card, nil
}

// GetCard returns a single card owned by the caller.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return nil, domain.NewValidationError("card_id", "required")
	}

	card, err := s.cards.GetByID(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	return card, nil
}

// ListCards returns the caller's cards, newest first, optionally filtered by category.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.List(ctx, userID, domain.CardFilter{Category: input.Category})
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

// UpdateCard edits question, answer or category. Scheduling fields are never touched.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.UpdateContent(ctx, userID, input.CardID, domain.CardContentUpdate{
		Question:  input.Question,
		Answer:    input.Answer,
		Category:  input.Category,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
	)

	return card, nil
}

// DeleteCard removes a card owned by the caller.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
	)

	return nil
}
