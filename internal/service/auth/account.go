package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/leitner-backend/internal/domain"
	"github.com/heartmarshall/leitner-backend/pkg/ctxutil"
)

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return domain.NewValidationError("current_password", "incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash), s.now().UTC()); err != nil {
		return fmt.Errorf("auth.ChangePassword update: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("user_id", userID.String()))

	return nil
}

// DeleteAccount removes the caller and, through the cascading foreign key, all their cards.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("auth.DeleteAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", userID.String()))

	return nil
}
