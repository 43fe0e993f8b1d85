package handler_test

import (
	"context"

	"replyflow.app/api/internal/model"
	"replyflow.app/api/internal/service"
)

type mockAutomationService struct {
	listKeywordsFn  func(ctx context.Context, userID int64) ([]model.Keyword, error)
	createKeywordFn func(ctx context.Context, userID int64, draft model.KeywordDraft) (*model.Keyword, error)
	updateKeywordFn func(ctx context.Context, userID, keywordID int64, patch model.KeywordPatch) (*model.Keyword, error)
	deleteKeywordFn func(ctx context.Context, userID, keywordID int64) error
	toggleKeywordFn func(ctx context.Context, userID, keywordID int64) (*model.Keyword, error)
	getConfigFn     func(ctx context.Context, userID int64) (*model.AutomationConfig, error)
	updateConfigFn  func(ctx context.Context, userID int64, patch model.AutomationConfigPatch) (*model.AutomationConfig, error)
	dashboardFn     func(ctx context.Context, userID int64) (*service.Dashboard, error)
}

func (m *mockAutomationService) ListKeywords(ctx context.Context, userID int64) ([]model.Keyword, error) {
	if m.listKeywordsFn != nil {
		return m.listKeywordsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockAutomationService) CreateKeyword(ctx context.Context, userID int64, draft model.KeywordDraft) (*model.Keyword, error) {
	if m.createKeywordFn != nil {
		return m.createKeywordFn(ctx, userID, draft)
	}
	return nil, nil
}

func (m *mockAutomationService) UpdateKeyword(ctx context.Context, userID, keywordID int64, patch model.KeywordPatch) (*model.Keyword, error) {
	if m.updateKeywordFn != nil {
		return m.updateKeywordFn(ctx, userID, keywordID, patch)
	}
	return nil, service.ErrKeywordNotFound
}

func (m *mockAutomationService) DeleteKeyword(ctx context.Context, userID, keywordID int64) error {
	if m.deleteKeywordFn != nil {
		return m.deleteKeywordFn(ctx, userID, keywordID)
	}
	return nil
}

func (m *mockAutomationService) ToggleKeyword(ctx context.Context, userID, keywordID int64) (*model.Keyword, error) {
	if m.toggleKeywordFn != nil {
		return m.toggleKeywordFn(ctx, userID, keywordID)
	}
	return nil, service.ErrKeywordNotFound
}

func (m *mockAutomationService) GetConfig(ctx context.Context, userID int64) (*model.AutomationConfig, error) {
	if m.getConfigFn != nil {
		return m.getConfigFn(ctx, userID)
	}
	cfg := model.DefaultAutomationConfig(userID)
	return &cfg, nil
}

func (m *mockAutomationService) UpdateConfig(ctx context.Context, userID int64, patch model.AutomationConfigPatch) (*model.AutomationConfig, error) {
	if m.updateConfigFn != nil {
		return m.updateConfigFn(ctx, userID, patch)
	}
	return nil, nil
}

func (m *mockAutomationService) Stats(ctx context.Context, userID int64) (model.DashboardStats, error) {
	keywords, err := m.ListKeywords(ctx, userID)
	if err != nil {
		return model.DashboardStats{}, err
	}
	return model.ComputeStats(keywords), nil
}

func (m *mockAutomationService) Dashboard(ctx context.Context, userID int64) (*service.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(ctx, userID)
	}
	return &service.Dashboard{}, nil
}

type mockProfileService struct {
	getFn            func(ctx context.Context, userID int64) (*model.Profile, error)
	updateFullNameFn func(ctx context.Context, userID int64, fullName string) (*model.Profile, error)
}

func (m *mockProfileService) Get(ctx context.Context, userID int64) (*model.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, service.ErrUserNotFound
}

func (m *mockProfileService) UpdateFullName(ctx context.Context, userID int64, fullName string) (*model.Profile, error) {
	if m.updateFullNameFn != nil {
		return m.updateFullNameFn(ctx, userID, fullName)
	}
	return nil, service.ErrUserNotFound
}

type mockAuthService struct {
	getAuthorizationURLFn func(state string) (string, error)
	handleCallbackFn      func(ctx context.Context, code string) (*model.Profile, *model.Session, error)
	validateSessionFn     func(ctx context.Context, token string) (*model.Profile, *model.Session, error)
	getSessionFn          func(ctx context.Context, token string) (*model.Session, error)
	logoutFn              func(ctx context.Context, sessionID int64) error
	getLogoutURLFn        func(workosSessionID string) (string, error)
	pruneSessionsFn       func(ctx context.Context) (int64, error)
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	if m.getAuthorizationURLFn != nil {
		return m.getAuthorizationURLFn(state)
	}
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.Profile, *model.Session, error) {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code)
	}
	return nil, nil, service.ErrInvalidCode
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (*model.Profile, *model.Session, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, token)
	}
	return nil, nil, service.ErrSessionExpired
}

func (m *mockAuthService) GetSession(ctx context.Context, token string) (*model.Session, error) {
	if m.getSessionFn != nil {
		return m.getSessionFn(ctx, token)
	}
	return nil, service.ErrSessionExpired
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

func (m *mockAuthService) GetLogoutURL(workosSessionID string) (string, error) {
	if m.getLogoutURLFn != nil {
		return m.getLogoutURLFn(workosSessionID)
	}
	return "", nil
}

func (m *mockAuthService) PruneSessions(ctx context.Context) (int64, error) {
	if m.pruneSessionsFn != nil {
		return m.pruneSessionsFn(ctx)
	}
	return 0, nil
}

// testToken is a well-formed session token; signedIn maps it to session 1.
const testToken = "cmVwbHlmbG93LWhhbmRsZXItdGVzdC10b2tlbi0zMmI"

// signedIn returns an auth service that accepts testToken as user 42.
func signedIn() *mockAuthService {
	return &mockAuthService{
		validateSessionFn: func(_ context.Context, token string) (*model.Profile, *model.Session, error) {
			if token != testToken {
				return nil, nil, service.ErrSessionExpired
			}
			return &model.Profile{ID: 42, Email: "ana@example.com"}, &model.Session{ID: 1, UserID: 42}, nil
		},
	}
}
