package auth

import (
	"time"

	"github.com/heartmarshall/leitner-backend/internal/domain"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}
