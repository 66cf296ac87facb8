// Package card implements the flashcard repository using PostgreSQL.
package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/leitner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leitner-backend/internal/domain"
)

const table = "cards"

var columns = []string{
	"id", "user_id", "question", "answer", "category",
	"box", "next_review", "created_at", "updated_at",
}

// Repo provides card persistence backed by PostgreSQL.
// Every query is scoped by user_id; a card owned by someone else reads as not found.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a card owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	q := r.selectOwned(userID).Where(squirrel.Eq{"id": cardID})

	c, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return c, nil
}

// GetByIDForUpdate returns a card and locks its row until the surrounding
// transaction ends. Concurrent reviews of the same card are serialized by it.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	q := r.selectOwned(userID).Where(squirrel.Eq{"id": cardID}).Suffix("FOR UPDATE")

	c, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return c, nil
}

// List returns the user's cards, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error) {
	q := r.selectOwned(userID)
	if filter.Category != nil {
		q = q.Where(squirrel.Eq{"category": *filter.Category})
	}
	q = q.OrderBy("created_at DESC", "id")

	cards, err := r.getMany(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "cards of user", userID)
	}
	return cards, nil
}

// ListDue returns cards with next_review <= asOf, lowest box first.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]domain.Card, error) {
	q := r.selectOwned(userID).
		Where(squirrel.LtOrEq{"next_review": asOf}).
		OrderBy("box", "next_review", "created_at")

	cards, err := r.getMany(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "due cards of user", userID)
	}
	return cards, nil
}

// ListByBox returns every card of the user that sits in the given box.
func (r *Repo) ListByBox(ctx context.Context, userID uuid.UUID, box int) ([]domain.Card, error) {
	q := r.selectOwned(userID).
		Where(squirrel.Eq{"box": box}).
		OrderBy("updated_at DESC", "id")

	cards, err := r.getMany(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "box cards of user", userID)
	}
	return cards, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new card and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	q := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(c.ID, c.UserID, c.Question, c.Answer, c.Category,
			c.Box, c.NextReview, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "card", c.ID)
	}
	return created, nil
}

// UpdateContent changes the non-nil content fields and stamps updated_at.
func (r *Repo) UpdateContent(ctx context.Context, userID, cardID uuid.UUID, params domain.CardContentUpdate) (*domain.Card, error) {
	q := postgres.Builder.Update(table).Set("updated_at", params.UpdatedAt)
	if params.Question != nil {
		q = q.Set("question", *params.Question)
	}
	if params.Answer != nil {
		q = q.Set("answer", *params.Answer)
	}
	if params.Category != nil {
		q = q.Set("category", *params.Category)
	}
	q = q.Where(squirrel.Eq{"id": cardID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	c, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return c, nil
}

// UpdateSchedule persists box, next_review and updated_at of a reviewed card.
func (r *Repo) UpdateSchedule(ctx context.Context, userID uuid.UUID, c domain.Card) (*domain.Card, error) {
	q := postgres.Builder.Update(table).
		Set("box", c.Box).
		Set("next_review", c.NextReview).
		Set("updated_at", c.UpdatedAt).
		Where(squirrel.Eq{"id": c.ID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	updated, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "card", c.ID)
	}
	return updated, nil
}

// Delete removes a card owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	q := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": cardID, "user_id": userID})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectOwned(userID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"user_id": userID})
}

func (r *Repo) getOne(ctx context.Context, q postgres.Sqlizer) (*domain.Card, error) {
	row, err := postgres.QueryRow(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	c, err := scanCard(row)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) getMany(ctx context.Context, q postgres.Sqlizer) ([]domain.Card, error) {
	rows, err := postgres.Query(ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	cards, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Card, error) {
		return scanCard(row)
	})
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []domain.Card{}
	}
	return cards, nil
}

func scanCard(row pgx.Row) (domain.Card, error) {
	var c domain.Card
	err := row.Scan(
		&c.ID, &c.UserID, &c.Question, &c.Answer, &c.Category,
		&c.Box, &c.NextReview, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
