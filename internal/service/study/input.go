package study

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/leitner-backend/internal/domain"
)

const (
	maxTextLength     = 2000
	maxCategoryLength = 100
)

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	Question string
	Answer   string
	Category string
}

// Normalize trims text fields and applies the default category.
func (i *CreateCardInput) Normalize() {
	i.Question = strings.TrimSpace(i.Question)
	i.Answer = strings.TrimSpace(i.Answer)
	i.Category = strings.TrimSpace(i.Category)
	if i.Category == "" {
		i.Category = domain.DefaultCategory
	}
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	var errs []domain.FieldError

	errs = validateText(errs, "question", i.Question, maxTextLength)
	errs = validateText(errs, "answer", i.Answer, maxTextLength)
	errs = validateText(errs, "category", i.Category, maxCategoryLength)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCardInput holds the parameters for editing a card's content.
type UpdateCardInput struct {
	CardID   uuid.UUID
	Question *string
	Answer   *string
	Category *string
}

// Normalize trims every provided text field.
func (i *UpdateCardInput) Normalize() {
	for _, p := range []*string{i.Question, i.Answer, i.Category} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// Validate checks all fields and collects all errors.
func (i *UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Question == nil && i.Answer == nil && i.Category == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Question != nil {
		errs = validateText(errs, "question", *i.Question, maxTextLength)
	}
	if i.Answer != nil {
		errs = validateText(errs, "answer", *i.Answer, maxTextLength)
	}
	if i.Category != nil {
		errs = validateText(errs, "category", *i.Category, maxCategoryLength)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewCardInput holds the parameters for reviewing a card.
type ReviewCardInput struct {
	CardID uuid.UUID
	// IsCorrect is required; nil means the outcome was not supplied.
	IsCorrect *bool
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.IsCorrect == nil {
		errs = append(errs, domain.FieldError{Field: "is_correct", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListCardsInput holds optional filters for listing cards.
type ListCardsInput struct {
	Category *string
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	if i.Category != nil && utf8.RuneCountInString(*i.Category) > maxCategoryLength {
		return domain.NewValidationError("category", "too long")
	}
	return nil
}

// MasteredInput holds the parameters for sampling mastered cards.
type MasteredInput struct {
	// Limit of zero means the configured default.
	Limit int
}

// Validate checks the limit against the configured maximum.
func (i *MasteredInput) Validate(maxLimit int) error {
	if i.Limit < 0 || i.Limit > maxLimit {
		return domain.NewValidationError("limit", "must be between 0 and "+strconv.Itoa(maxLimit))
	}
	return nil
}

// QuizInput holds the parameters for building a quiz.
type QuizInput struct {
	// Size of zero means the configured default.
	Size int
}

// Validate checks the size against the configured maximum.
func (i *QuizInput) Validate(maxSize int) error {
	if i.Size < 0 || i.Size > maxSize {
		return domain.NewValidationError("size", "must be between 0 and "+strconv.Itoa(maxSize))
	}
	return nil
}

func validateText(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	switch {
	case value == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(value) > maxLen:
		errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
