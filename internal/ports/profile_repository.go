package ports

import (
	"context"
	"time"
)

// ProfileData represents a user's stored city preferences
type ProfileData struct {
	ID             uint
	Username       string
	Email          string
	CustomCities   []string
	SelectedCity   string
	LoginTimestamp time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfileRepository defines the contract for profile persistence
type ProfileRepository interface {
	FindByUsername(ctx context.Context, username string) (*ProfileData, error)
	Save(ctx context.Context, profile *ProfileData) error
	Update(ctx context.Context, profile *ProfileData) error
}

// SessionData represents an open session
type SessionData struct {
	Token          string    `json:"token"`
	Username       string    `json:"username"`
	LoginTimestamp time.Time `json:"login_timestamp"`
}

// SessionStore defines the contract for session storage
type SessionStore interface {
	Get(ctx context.Context, token string) (*SessionData, error)
	Save(ctx context.Context, session *SessionData, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}
