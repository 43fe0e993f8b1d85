package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"replyflow.app/api/internal/http/dto"
	"replyflow.app/api/internal/http/middleware"
	"replyflow.app/api/internal/model"
	"replyflow.app/api/internal/service"
)

const stateCookieName = "replyflow_oauth_state"

type AuthHandler struct {
	authService  service.AuthService
	dashboardURL string
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, dashboardURL string, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		dashboardURL: dashboardURL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	c.SetCookie(stateCookieName, state, 600, "/", "", h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	state := c.Query("state")

	if errorParam := c.Query("error"); errorParam != "" {
		slog.WarnContext(ctx, "OAuth error", "error", errorParam, "description", c.Query("error_description"))
		h.redirectWithError(c, errorParam)
		return
	}

	storedState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != storedState {
		slog.WarnContext(ctx, "state mismatch")
		h.redirectWithError(c, "invalid_state")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.isProduction, true)

	if code == "" {
		h.redirectWithError(c, "no_code")
		return
	}

	profile, session, err := h.authService.HandleCallback(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			h.redirectWithError(c, "invalid_code")
			return
		}
		slog.ErrorContext(ctx, "failed to handle callback", "error", err)
		h.redirectWithError(c, "callback_failed")
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		session.Token,
		int(model.SessionTTL/time.Second),
		"/",
		"",
		h.isProduction,
		true,
	)

	slog.InfoContext(ctx, "user logged in", "user_id", profile.ID)
	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"/dashboard")
}

// Logout deletes the local session and, when the sign-in went through
// WorkOS, returns the URL that ends the hosted session too.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	resp := dto.LogoutResponse{Message: "logged out"}

	token, err := middleware.SessionToken(c)
	if err == nil {
		session, err := h.authService.GetSession(ctx, token)
		if err != nil {
			slog.DebugContext(ctx, "session not found for logout", "error", err)
		}

		if session != nil {
			if err := h.authService.Logout(ctx, session.ID); err != nil {
				slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", session.ID)
			}
		}

		if session != nil && session.WorkOSSessionID != nil {
			url, err := h.authService.GetLogoutURL(*session.WorkOSSessionID)
			if err != nil {
				slog.WarnContext(ctx, "failed to build logout URL", "error", err)
			}
			resp.LogoutURL = url
		}
	}

	middleware.ClearSessionCookie(c, h.isProduction)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := middleware.SessionToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	profile, _, err := h.authService.ValidateSession(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
			middleware.ClearSessionCookie(c, h.isProduction)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		slog.ErrorContext(ctx, "failed to validate session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *AuthHandler) redirectWithError(c *gin.Context, code string) {
	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error="+code)
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
