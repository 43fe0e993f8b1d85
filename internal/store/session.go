package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"replyflow.app/api/core/db/sqlc"
	"replyflow.app/api/internal/model"
)

type sessionStore struct {
	queries *sqlc.Queries
}

func newSessionStore(queries *sqlc.Queries) SessionStore {
	return &sessionStore{queries: queries}
}

// GetByToken finds a session whether or not it has expired.
func (s *sessionStore) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	return sessionResult(s.queries.GetSessionByToken(ctx, model.HashSessionToken(token)))
}

// GetValidByToken filters on expires_at in SQL so the database clock decides.
func (s *sessionStore) GetValidByToken(ctx context.Context, token string) (*model.Session, error) {
	return sessionResult(s.queries.GetValidSessionByToken(ctx, model.HashSessionToken(token)))
}

// Create persists the hash of session.Token, never the token itself.
func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	if session.Token == "" {
		return errors.New("session has no token")
	}
	stored, err := sessionResult(s.queries.CreateSession(ctx, sqlc.CreateSessionParams{
		ID:              session.ID,
		UserID:          session.UserID,
		WorkosSessionID: session.WorkOSSessionID,
		ExpiresAt:       timestamptz(session.ExpiresAt),
		TokenHash:       model.HashSessionToken(session.Token),
	}))
	if err != nil {
		return err
	}
	stored.Token = session.Token
	*session = *stored
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteSession(ctx, id)
}

func (s *sessionStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.queries.DeleteExpiredSessions(ctx, timestamptz(cutoff))
}

func sessionResult(row sqlc.Session, err error) (*model.Session, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &model.Session{
		ID:              row.ID,
		UserID:          row.UserID,
		WorkOSSessionID: row.WorkosSessionID,
		ExpiresAt:       row.ExpiresAt.Time,
		CreatedAt:       row.CreatedAt.Time,
	}, nil
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
