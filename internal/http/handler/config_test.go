package handler_test

import (
	"bytes"
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

var _ = Describe("ConfigHandler and DashboardHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAutomationService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAutomationService{}
		cfgHandler := handler.NewConfigHandler(svc)

		rg := router.Group("", middleware.RequireAuth(signedIn(), false))
		rg.GET("/config", cfgHandler.Get)
		rg.PATCH("/config", cfgHandler.Update)
		rg.GET("/dashboard", handler.NewDashboardHandler(svc).Get)
		rg.GET("/contract", handler.Contract)
	})

	send := func(req *http.Request) *httptest.ResponseRecorder {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: testToken})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns the default config on first read", func() {
		w := send(httptest.NewRequest(http.MethodGet, "/config", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["delay_seconds"]).To(BeEquivalentTo(5))
		Expect(resp["send_dm"]).To(BeTrue())
		Expect(resp["reply_to_comment"]).To(BeTrue())
	})

	It("applies a partial update", func() {
		svc.updateConfigFn = func(_ context.Context, userID int64, patch model.AutomationConfigPatch) (*model.AutomationConfig, error) {
			Expect(patch.DelaySeconds).To(HaveValue(Equal(30)))
			Expect(patch.AccessToken).To(BeNil())
			cfg := model.DefaultAutomationConfig(userID)
			patch.Apply(&cfg)
			return &cfg, nil
		}

		req := httptest.NewRequest(http.MethodPatch, "/config", bytes.NewBufferString(`{"delay_seconds":30}`))
		req.Header.Set("Content-Type", "application/json")
		w := send(req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("rejects a negative delay", func() {
		req := httptest.NewRequest(http.MethodPatch, "/config", bytes.NewBufferString(`{"delay_seconds":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := send(req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("renders the dashboard", func() {
		svc.dashboardFn = func(context.Context, int64) (*service.Dashboard, error) {
			active := []model.Keyword{{ID: 1, Enabled: true, TriggersCount: 2}}
			return &service.Dashboard{
				Stats:          model.ComputeStats(active),
				ActiveKeywords: active,
				TotalKeywords:  3,
			}, nil
		}

		w := send(httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp struct {
			Stats struct {
				TotalTriggers  int `json:"total_triggers"`
				ActiveKeywords int `json:"active_keywords"`
			} `json:"stats"`
			ActiveKeywords []map[string]any `json:"active_keywords"`
			TotalKeywords  int              `json:"total_keywords"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Stats.TotalTriggers).To(Equal(2))
		Expect(resp.ActiveKeywords).To(HaveLen(1))
		Expect(resp.TotalKeywords).To(Equal(3))
	})

	It("serves the engine contract", func() {
		w := send(httptest.NewRequest(http.MethodGet, "/contract", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"button_text"`))
		Expect(w.Body.String()).To(ContainSubstring(`"delay_seconds"`))
	})
})
