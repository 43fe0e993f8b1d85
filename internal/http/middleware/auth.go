package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"replyflow.app/api/common/logger"
	"replyflow.app/api/internal/model"
	"replyflow.app/api/internal/service"
)

type contextKey string

const (
	SessionCookieName  = "replyflow_session"
	SessionTokenHeader = "X-Session-Token"

	profileContextKey   contextKey = "profile"
	sessionIDContextKey contextKey = "session_id"
)

var ErrMalformedSessionToken = errors.New("malformed session token")

// RequireAuth resolves the session from the cookie, or from the
// X-Session-Token header the CLI sends, and aborts with 401 when it is
// missing or expired.
func RequireAuth(authService service.AuthService, isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := SessionToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		profile, session, err := authService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				ClearSessionCookie(c, isProduction)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), profileContextKey, profile)
		ctx = context.WithValue(ctx, sessionIDContextKey, session.ID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			UserID:    logger.Ptr(profile.ID),
			SessionID: logger.Ptr(session.ID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func GetProfile(ctx context.Context) *model.Profile {
	profile, _ := ctx.Value(profileContextKey).(*model.Profile)
	return profile
}

// GetUserID returns 0 outside RequireAuth.
func GetUserID(ctx context.Context) int64 {
	if profile := GetProfile(ctx); profile != nil {
		return profile.ID
	}
	return 0
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

// SessionToken reads the bearer token from the request, header first. Values
// that cannot be a token, such as a numeric session id, are refused here.
func SessionToken(c *gin.Context) (string, error) {
	token := c.GetHeader(SessionTokenHeader)
	if token == "" {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			return "", err
		}
		token = cookie
	}
	if !model.IsSessionToken(token) {
		return "", ErrMalformedSessionToken
	}
	return token, nil
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
