package model

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"
)

// SessionTTL is how long a dashboard sign-in stays valid. The session cookie
// is issued with the same lifetime.
const SessionTTL = 7 * 24 * time.Hour

const sessionTokenBytes = 32

// Session is a signed-in dashboard visit. WorkOSSessionID is set when the
// identity provider reported one, and is needed to build its logout URL.
//
// Token is the bearer credential handed to the browser or CLI. Only its hash
// is stored, so a session read back from the database has an empty Token.
type Session struct {
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	WorkOSSessionID *string   `json:"workos_session_id,omitempty"`
	Token           string    `json:"-"`
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
}

func NewSession(id, userID int64, token, workosSessionID string, now time.Time) *Session {
	s := &Session{
		ID:        id,
		UserID:    userID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if workosSessionID != "" {
		s.WorkOSSessionID = &workosSessionID
	}
	return s
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// NewSessionToken returns 32 random bytes, base64url encoded without padding.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// IsSessionToken reports whether s has the shape NewSessionToken produces.
func IsSessionToken(s string) bool {
	if len(s) != base64.RawURLEncoding.EncodedLen(sessionTokenBytes) {
		return false
	}
	b, err := base64.RawURLEncoding.Strict().DecodeString(s)
	return err == nil && len(b) == sessionTokenBytes
}

func HashSessionToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
