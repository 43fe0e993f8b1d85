package store

import (
	"context"
	"errors"
	"time"

	"replyflow.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// KeywordStore defines the contract for keyword data access.
// Every call is scoped by the owning user.
type KeywordStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Keyword, error) // newest first
	GetByID(ctx context.Context, userID, id int64) (*model.Keyword, error)
	Create(ctx context.Context, keyword *model.Keyword) error
	Update(ctx context.Context, userID, id int64, patch model.KeywordPatch) (*model.Keyword, error)
	Toggle(ctx context.Context, userID, id int64) (*model.Keyword, error) // atomic flip
	Delete(ctx context.Context, userID, id int64) error                   // no error when absent
}

// AutomationConfigStore defines the contract for the per-user configuration row
type AutomationConfigStore interface {
	GetOrCreate(ctx context.Context, defaults *model.AutomationConfig) error
	Update(ctx context.Context, userID int64, patch model.AutomationConfigPatch) (*model.AutomationConfig, error)
}

// ProfileStore defines the contract for profile data access
type ProfileStore interface {
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
	UpsertByWorkOSID(ctx context.Context, profile *model.Profile) error
	UpdateFullName(ctx context.Context, id int64, fullName *string) (*model.Profile, error)
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	GetValidByToken(ctx context.Context, token string) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error                  // stores only the token hash
	Delete(ctx context.Context, id int64) error
	// DeleteExpired removes sessions that expired at or before cutoff and
	// reports how many went.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
