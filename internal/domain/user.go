package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of a card collection.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
