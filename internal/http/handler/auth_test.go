package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replyflow.app/api/internal/http/handler"
	"replyflow.app/api/internal/http/middleware"
	"replyflow.app/api/internal/model"
	"replyflow.app/api/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = signedIn()
		h := handler.NewAuthHandler(svc, "http://localhost:3000", false)
		router.GET("/auth/login", h.Login)
		router.GET("/auth/callback", h.Callback)
		router.POST("/auth/logout", h.Logout)
		router.GET("/auth/me", h.Me)
	})

	findCookie := func(w *httptest.ResponseRecorder, name string) *http.Cookie {
		for _, c := range w.Result().Cookies() {
			if c.Name == name {
				return c
			}
		}
		return nil
	}

	It("redirects to the hosted sign-in page with a state cookie", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

		Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
		state := findCookie(w, "replyflow_oauth_state")
		Expect(state).NotTo(BeNil())
		Expect(w.Header().Get("Location")).To(HaveSuffix("state=" + state.Value))
	})

	Describe("Callback", func() {
		It("rejects a mismatched state", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=one", nil)
			req.AddCookie(&http.Cookie{Name: "replyflow_oauth_state", Value: "two"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
			Expect(w.Header().Get("Location")).To(Equal("http://localhost:3000?auth_error=invalid_state"))
		})

		It("sets the session cookie on success", func() {
			svc.handleCallbackFn = func(_ context.Context, code string) (*model.Profile, *model.Session, error) {
				Expect(code).To(Equal("abc"))
				return &model.Profile{ID: 42}, &model.Session{ID: 777, UserID: 42, Token: testToken}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=s1", nil)
			req.AddCookie(&http.Cookie{Name: "replyflow_oauth_state", Value: "s1"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Header().Get("Location")).To(Equal("http://localhost:3000/dashboard"))
			session := findCookie(w, middleware.SessionCookieName)
			Expect(session).NotTo(BeNil())
			Expect(session.Value).To(Equal(testToken))
			Expect(session.HttpOnly).To(BeTrue())
		})

		It("reports a rejected code", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=bad&state=s1", nil)
			req.AddCookie(&http.Cookie{Name: "replyflow_oauth_state", Value: "s1"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Header().Get("Location")).To(HaveSuffix("auth_error=invalid_code"))
		})
	})

	Describe("Logout", func() {
		It("deletes the session and returns the hosted logout URL", func() {
			sid := "session_01"
			var deleted int64
			svc.getSessionFn = func(_ context.Context, token string) (*model.Session, error) {
				Expect(token).To(Equal(testToken))
				return &model.Session{ID: 1, WorkOSSessionID: &sid}, nil
			}
			svc.logoutFn = func(_ context.Context, id int64) error {
				deleted = id
				return nil
			}
			svc.getLogoutURLFn = func(workosSessionID string) (string, error) {
				return "https://auth.example.com/logout?sid=" + workosSessionID, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: testToken})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(deleted).To(Equal(int64(1)))
			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["logout_url"]).To(HaveSuffix("sid=session_01"))
			Expect(findCookie(w, middleware.SessionCookieName).MaxAge).To(BeNumerically("<", 0))
		})

		It("does not delete anything for a numeric session id", func() {
			svc.getSessionFn = func(context.Context, string) (*model.Session, error) {
				Fail("a numeric id must not reach the session lookup")
				return nil, nil
			}
			svc.logoutFn = func(context.Context, int64) error {
				Fail("nothing should be deleted")
				return nil
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "2111678930661412864"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("succeeds without a session", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).NotTo(ContainSubstring("logout_url"))
		})
	})

	Describe("Me", func() {
		It("returns the profile for a valid session", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.Header.Set(middleware.SessionTokenHeader, testToken)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("ana@example.com"))
		})

		It("returns 401 for an expired session", func() {
			svc.validateSessionFn = func(context.Context, string) (*model.Profile, *model.Session, error) {
				return nil, nil, service.ErrSessionExpired
			}

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.Header.Set(middleware.SessionTokenHeader, testToken)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 401 for a session id sent as the token", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.Header.Set(middleware.SessionTokenHeader, "1")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
