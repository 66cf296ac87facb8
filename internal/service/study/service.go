package study

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leitner-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error)
	ListDue(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]domain.Card, error)
	ListByBox(ctx context.Context, userID uuid.UUID, box int) ([]domain.Card, error)
	UpdateContent(ctx context.Context, userID, cardID uuid.UUID, params domain.CardContentUpdate) (*domain.Card, error)
	UpdateSchedule(ctx context.Context, userID uuid.UUID, card domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the study parameters the service needs.
type Config struct {
	Location           *time.Location
	ActivityWindowDays int
	QuizSize           int
	MasteredLimit      int
	MasteredLimitMax   int
}

// Service implements the study business logic.
type Service struct {
	cards cardRepo
	tx    txManager
	log   *slog.Logger
	cfg   Config
	now   func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a new Study service.
func NewService(log *slog.Logger, cards cardRepo, tx txManager, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Service{
		cards: cards,
		tx:    tx,
		log:   log.With("service", "study"),
		cfg:   cfg,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// withRand runs fn holding the service's random source.
func (s *Service) withRand(fn func(rng *rand.Rand)) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	fn(s.rng)
}
