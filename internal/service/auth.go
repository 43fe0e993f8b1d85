package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"replyflow.app/api/common/id"
	"replyflow.app/api/common/logger"
	"replyflow.app/api/core/config"
	"replyflow.app/api/internal/model"
	"replyflow.app/api/internal/store"
)

var (
	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionExpired = errors.New("session expired")
)

type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*model.Profile, *model.Session, error)
	// ValidateSession resolves a bearer token to its unexpired session and
	// the profile that owns it.
	ValidateSession(ctx context.Context, token string) (*model.Profile, *model.Session, error)
	GetSession(ctx context.Context, token string) (*model.Session, error)
	Logout(ctx context.Context, sessionID int64) error
	GetLogoutURL(workosSessionID string) (string, error)
	PruneSessions(ctx context.Context) (int64, error)
}

// IdentityProvider is the hosted sign-in backend.
type IdentityProvider interface {
	AuthorizationURL(opts usermanagement.GetAuthorizationURLOpts) (string, error)
	AuthenticateWithCode(ctx context.Context, opts usermanagement.AuthenticateWithCodeOpts) (usermanagement.AuthenticateResponse, error)
	LogoutURL(opts usermanagement.GetLogoutURLOpts) (string, error)
}

type workOSProvider struct{}

// NewWorkOSProvider configures the WorkOS user management client.
func NewWorkOSProvider(cfg config.WorkOSConfig) IdentityProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return workOSProvider{}
}

func (workOSProvider) AuthorizationURL(opts usermanagement.GetAuthorizationURLOpts) (string, error) {
	u, err := usermanagement.GetAuthorizationURL(opts)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (workOSProvider) AuthenticateWithCode(ctx context.Context, opts usermanagement.AuthenticateWithCodeOpts) (usermanagement.AuthenticateResponse, error) {
	return usermanagement.AuthenticateWithCode(ctx, opts)
}

func (workOSProvider) LogoutURL(opts usermanagement.GetLogoutURLOpts) (string, error) {
	u, err := usermanagement.GetLogoutURL(opts)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

type authService struct {
	profileStore store.ProfileStore
	sessionStore store.SessionStore
	provider     IdentityProvider
	cfg          config.WorkOSConfig
	dashboardURL string
}

func NewAuthService(
	profileStore store.ProfileStore,
	sessionStore store.SessionStore,
	provider IdentityProvider,
	cfg config.WorkOSConfig,
	dashboardURL string,
) AuthService {
	return &authService{
		profileStore: profileStore,
		sessionStore: sessionStore,
		provider:     provider,
		cfg:          cfg,
		dashboardURL: dashboardURL,
	}
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	url, err := s.provider.AuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    s.cfg.ClientID,
		RedirectURI: s.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url, nil
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.Profile, *model.Session, error) {
	authResponse, err := s.provider.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: s.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	workosUser := authResponse.User

	profile := &model.Profile{
		ID:        id.New(),
		FullName:  buildFullName(workosUser),
		Email:     workosUser.Email,
		AvatarURL: nonEmpty(workosUser.ProfilePictureURL),
		WorkOSID:  &workosUser.ID,
	}

	if err := s.profileStore.UpsertByWorkOSID(ctx, profile); err != nil {
		slog.ErrorContext(ctx, "failed to upsert profile",
			"error", err,
			"email", profile.Email,
			"workos_id", workosUser.ID,
		)
		return nil, nil, fmt.Errorf("upserting profile: %w", err)
	}

	token, err := model.NewSessionToken()
	if err != nil {
		return nil, nil, fmt.Errorf("generating session token: %w", err)
	}
	session := model.NewSession(id.New(), profile.ID, token, sessionIDFromAccessToken(authResponse.AccessToken), time.Now())

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(profile.ID),
		SessionID: logger.Ptr(session.ID),
	})

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session", "error", err)
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "user authenticated", "email", profile.Email)

	return profile, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*model.Profile, *model.Session, error) {
	if !model.IsSessionToken(token) {
		return nil, nil, ErrSessionExpired
	}
	session, err := s.sessionStore.GetValidByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrSessionExpired
		}
		return nil, nil, fmt.Errorf("getting session: %w", err)
	}
	if session.Expired(time.Now()) {
		return nil, nil, ErrSessionExpired
	}

	profile, err := s.profileStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("getting profile: %w", err)
	}

	return profile, session, nil
}

// GetSession finds the session behind a token even after it expired, so
// logout can still end the hosted session.
func (s *authService) GetSession(ctx context.Context, token string) (*model.Session, error) {
	if !model.IsSessionToken(token) {
		return nil, ErrSessionExpired
	}
	session, err := s.sessionStore.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// PruneSessions deletes every session that has expired. Expired rows are
// already rejected by ValidateSession; this only reclaims space.
func (s *authService) PruneSessions(ctx context.Context) (int64, error) {
	n, err := s.sessionStore.DeleteExpired(ctx, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to prune sessions", "error", err)
		return 0, fmt.Errorf("pruning sessions: %w", err)
	}
	if n > 0 {
		slog.InfoContext(ctx, "pruned expired sessions", "count", n)
	}
	return n, nil
}

// GetLogoutURL ends the hosted session too, then returns to the dashboard.
func (s *authService) GetLogoutURL(workosSessionID string) (string, error) {
	url, err := s.provider.LogoutURL(usermanagement.GetLogoutURLOpts{
		SessionID: workosSessionID,
		ReturnTo:  s.dashboardURL,
	})
	if err != nil {
		return "", fmt.Errorf("generating logout URL: %w", err)
	}
	return url, nil
}

// sessionIDFromAccessToken reads the sid claim. The token came straight from
// WorkOS over TLS, so the signature is not re-verified here.
func sessionIDFromAccessToken(accessToken string) string {
	if accessToken == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func buildFullName(user usermanagement.User) *string {
	switch {
	case user.FirstName != "" && user.LastName != "":
		return logger.Ptr(user.FirstName + " " + user.LastName)
	case user.FirstName != "":
		return logger.Ptr(user.FirstName)
	case user.LastName != "":
		return logger.Ptr(user.LastName)
	}
	return nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
