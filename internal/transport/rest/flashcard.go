package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leitner-backend/internal/domain"
	"github.com/heartmarshall/leitner-backend/internal/service/study"
)

// studyService defines the card and study operations the handler needs.
type studyService interface {
	CreateCard(ctx context.Context, input study.CreateCardInput) (*domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ListCards(ctx context.Context, input study.ListCardsInput) ([]domain.Card, error)
	UpdateCard(ctx context.Context, input study.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (*domain.Card, error)
	GetDueCards(ctx context.Context) ([]domain.Card, error)
	GetStats(ctx context.Context) (domain.StatsSnapshot, error)
	GetMasteredCards(ctx context.Context, input study.MasteredInput) ([]domain.Card, error)
	GetQuiz(ctx context.Context, input study.QuizInput) ([]domain.QuizQuestion, error)
}

// FlashcardHandler serves the /flashcards endpoints.
type FlashcardHandler struct {
	svc          studyService
	log          *slog.Logger
	locationBase string
}

// NewFlashcardHandler creates a FlashcardHandler. locationBase is the absolute
// URL prefix (base URL plus base path) used for Location headers.
func NewFlashcardHandler(svc studyService, logger *slog.Logger, locationBase string) *FlashcardHandler {
	return &FlashcardHandler{
		svc:          svc,
		log:          logger.With("handler", "flashcards"),
		locationBase: locationBase,
	}
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type createCardRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
	Category string `json:"category"`
}

type updateCardRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Category *string `json:"category"`
}

type reviewRequest struct {
	IsCorrect *bool `json:"isCorrect" validate:"required"`
}

type cardResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   string    `json:"category"`
	Box        int       `json:"box"`
	NextReview time.Time `json:"nextReview"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type boxStatResponse struct {
	Box   int `json:"box"`
	Count int `json:"count"`
}

type statsResponse struct {
	TotalCards    int               `json:"totalCards"`
	DueToday      int               `json:"dueToday"`
	ReviewedToday int               `json:"reviewedToday"`
	TodayProgress int               `json:"todayProgress"`
	CurrentStreak int               `json:"currentStreak"`
	ActivityData  map[string]int    `json:"activityData"`
	BoxStats      []boxStatResponse `json:"boxStats"`
}

type quizQuestionResponse struct {
	CardID        string   `json:"cardId"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []string `json:"options"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Create handles POST /flashcards.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	card, err := h.svc.CreateCard(r.Context(), study.CreateCardInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", h.locationBase+"/flashcards/"+card.ID.String())
	writeJSON(w, http.StatusCreated, toCardResponse(*card))
}

// List handles GET /flashcards?category=.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	var input study.ListCardsInput
	if q := r.URL.Query(); q.Has("category") {
		category := q.Get("category")
		input.Category = &category
	}

	cards, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponses(cards))
}

// Get handles GET /flashcards/{id}.
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r)
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	card, err := h.svc.GetCard(r.Context(), cardID)
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*card))
}

// Update handles PUT /flashcards/{id}.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r)
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	var req updateCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), study.UpdateCardInput{
		CardID:   cardID,
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*card))
}

// Delete handles DELETE /flashcards/{id}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r)
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteCard(r.Context(), cardID); err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Review handles PATCH /flashcards/{id}/review.
func (h *FlashcardHandler) Review(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r)
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	card, err := h.svc.ReviewCard(r.Context(), study.ReviewCardInput{
		CardID:    cardID,
		IsCorrect: req.IsCorrect,
	})
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*card))
}

// Due handles GET /flashcards/due.
func (h *FlashcardHandler) Due(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.GetDueCards(r.Context())
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponses(cards))
}

// Stats handles GET /flashcards/stats/summary.
func (h *FlashcardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GetStats(r.Context())
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	resp := statsResponse{
		TotalCards:    snap.TotalCards,
		DueToday:      snap.DueToday,
		ReviewedToday: snap.ReviewedToday,
		TodayProgress: snap.TodayProgress,
		CurrentStreak: snap.CurrentStreak,
		ActivityData:  snap.ActivityByDate,
		BoxStats:      make([]boxStatResponse, 0, len(snap.BoxStats)),
	}
	if resp.ActivityData == nil {
		resp.ActivityData = map[string]int{}
	}
	for _, bs := range snap.BoxStats {
		resp.BoxStats = append(resp.BoxStats, boxStatResponse{Box: bs.Box, Count: bs.Count})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Mastered handles GET /flashcards/mastered?limit=.
func (h *FlashcardHandler) Mastered(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	cards, err := h.svc.GetMasteredCards(r.Context(), study.MasteredInput{Limit: limit})
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponses(cards))
}

// Quiz handles GET /flashcards/quiz?size=.
func (h *FlashcardHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	size, err := queryInt(r, "size")
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	quiz, err := h.svc.GetQuiz(r.Context(), study.QuizInput{Size: size})
	if err != nil {
		writeErrorFromDomain(w, r, h.log, err)
		return
	}

	resp := make([]quizQuestionResponse, 0, len(quiz))
	for _, q := range quiz {
		resp = append(resp, quizQuestionResponse{
			CardID:        q.CardID.String(),
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Options:       q.Options,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "invalid card id")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter; absent means zero.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func toCardResponse(c domain.Card) cardResponse {
	return cardResponse{
		ID:         c.ID.String(),
		UserID:     c.UserID.String(),
		Question:   c.Question,
		Answer:     c.Answer,
		Category:   c.Category,
		Box:        c.Box,
		NextReview: c.NextReview,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}
