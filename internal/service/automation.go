package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"replyflow.app/api/common/id"
	"replyflow.app/api/common/logger"
	"replyflow.app/api/internal/model"
	"replyflow.app/api/internal/queue"
	"replyflow.app/api/internal/store"
)

var ErrKeywordNotFound = errors.New("keyword not found")

// AutomationService manages one user's keyword triggers and automation
// configuration. Callers validate input; the service only persists it.
type AutomationService interface {
	ListKeywords(ctx context.Context, userID int64) ([]model.Keyword, error)
	CreateKeyword(ctx context.Context, userID int64, draft model.KeywordDraft) (*model.Keyword, error)
	UpdateKeyword(ctx context.Context, userID, keywordID int64, patch model.KeywordPatch) (*model.Keyword, error)
	DeleteKeyword(ctx context.Context, userID, keywordID int64) error
	ToggleKeyword(ctx context.Context, userID, keywordID int64) (*model.Keyword, error)
	GetConfig(ctx context.Context, userID int64) (*model.AutomationConfig, error)
	UpdateConfig(ctx context.Context, userID int64, patch model.AutomationConfigPatch) (*model.AutomationConfig, error)
	Stats(ctx context.Context, userID int64) (model.DashboardStats, error)
	Dashboard(ctx context.Context, userID int64) (*Dashboard, error)
}

// Dashboard is what the landing page renders.
type Dashboard struct {
	Stats          model.DashboardStats
	ActiveKeywords []model.Keyword
	TotalKeywords  int
}

type automationService struct {
	keywordStore store.KeywordStore
	configStore  store.AutomationConfigStore
	txRunner     TxRunner
	changes      queue.Producer
}

func NewAutomationService(
	keywordStore store.KeywordStore,
	configStore store.AutomationConfigStore,
	txRunner TxRunner,
	changes queue.Producer,
) AutomationService {
	if changes == nil {
		changes = queue.NopProducer{}
	}
	return &automationService{
		keywordStore: keywordStore,
		configStore:  configStore,
		txRunner:     txRunner,
		changes:      changes,
	}
}

func (s *automationService) ListKeywords(ctx context.Context, userID int64) ([]model.Keyword, error) {
	ctx = withAutomationFields(ctx, userID, nil)

	keywords, err := s.keywordStore.ListByUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list keywords", "error", err)
		return nil, fmt.Errorf("listing keywords: %w", err)
	}
	return keywords, nil
}

func (s *automationService) CreateKeyword(ctx context.Context, userID int64, draft model.KeywordDraft) (*model.Keyword, error) {
	sc := logger.StartSpan(ctx, "automation.create_keyword")
	defer sc.End()
	ctx = withAutomationFields(sc.Context(), userID, nil)

	keyword := &model.Keyword{
		ID:         id.New(),
		UserID:     userID,
		Word:       draft.Word,
		Link:       draft.Link,
		Message:    draft.Message,
		ButtonText: draft.ButtonText,
		Enabled:    draft.Enabled,
	}

	if err := s.keywordStore.Create(ctx, keyword); err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to create keyword", "error", err, "word", draft.Word)
		return nil, fmt.Errorf("creating keyword: %w", err)
	}

	slog.InfoContext(ctx, "keyword created", "keyword_id", keyword.ID, "word", keyword.Word)
	s.notify(ctx, userID, queue.EntityKeyword, keyword.ID, queue.ActionCreated)
	return keyword, nil
}

func (s *automationService) UpdateKeyword(ctx context.Context, userID, keywordID int64, patch model.KeywordPatch) (*model.Keyword, error) {
	sc := logger.StartSpan(ctx, "automation.update_keyword")
	defer sc.End()
	ctx = withAutomationFields(sc.Context(), userID, &keywordID)

	keyword, err := s.keywordStore.Update(ctx, userID, keywordID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrKeywordNotFound
		}
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to update keyword", "error", err)
		return nil, fmt.Errorf("updating keyword: %w", err)
	}

	s.notify(ctx, userID, queue.EntityKeyword, keywordID, queue.ActionUpdated)
	return keyword, nil
}

// DeleteKeyword succeeds whether or not the keyword existed.
func (s *automationService) DeleteKeyword(ctx context.Context, userID, keywordID int64) error {
	sc := logger.StartSpan(ctx, "automation.delete_keyword")
	defer sc.End()
	ctx = withAutomationFields(sc.Context(), userID, &keywordID)

	if err := s.keywordStore.Delete(ctx, userID, keywordID); err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to delete keyword", "error", err)
		return fmt.Errorf("deleting keyword: %w", err)
	}

	s.notify(ctx, userID, queue.EntityKeyword, keywordID, queue.ActionDeleted)
	return nil
}

// ToggleKeyword flips enabled in a single statement, so concurrent toggles
// each apply to the value the other left behind.
func (s *automationService) ToggleKeyword(ctx context.Context, userID, keywordID int64) (*model.Keyword, error) {
	sc := logger.StartSpan(ctx, "automation.toggle_keyword")
	defer sc.End()
	ctx = withAutomationFields(sc.Context(), userID, &keywordID)

	keyword, err := s.keywordStore.Toggle(ctx, userID, keywordID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrKeywordNotFound
		}
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to toggle keyword", "error", err)
		return nil, fmt.Errorf("toggling keyword: %w", err)
	}

	slog.InfoContext(ctx, "keyword toggled", "enabled", keyword.Enabled)
	s.notify(ctx, userID, queue.EntityKeyword, keywordID, queue.ActionToggled)
	return keyword, nil
}

// GetConfig returns the user's configuration, provisioning defaults on first read.
func (s *automationService) GetConfig(ctx context.Context, userID int64) (*model.AutomationConfig, error) {
	ctx = withAutomationFields(ctx, userID, nil)

	cfg, err := getOrCreateConfig(ctx, s.configStore, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load automation config", "error", err)
		return nil, fmt.Errorf("loading automation config: %w", err)
	}
	return cfg, nil
}

func (s *automationService) UpdateConfig(ctx context.Context, userID int64, patch model.AutomationConfigPatch) (*model.AutomationConfig, error) {
	sc := logger.StartSpan(ctx, "automation.update_config")
	defer sc.End()
	ctx = withAutomationFields(sc.Context(), userID, nil)

	var updated *model.AutomationConfig
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		configs := stores.AutomationConfigs()
		if _, err := getOrCreateConfig(ctx, configs, userID); err != nil {
			return fmt.Errorf("provisioning config: %w", err)
		}

		cfg, err := configs.Update(ctx, userID, patch)
		if err != nil {
			return err
		}
		updated = cfg
		return nil
	})
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to update automation config", "error", err)
		return nil, fmt.Errorf("updating automation config: %w", err)
	}

	slog.InfoContext(ctx, "automation config updated",
		"delay_seconds", updated.DelaySeconds,
		"reply_to_comment", updated.ReplyToComment,
		"send_dm", updated.SendDM,
	)
	s.notify(ctx, userID, queue.EntityAutomationConfig, updated.ID, queue.ActionUpdated)
	return updated, nil
}

func (s *automationService) Stats(ctx context.Context, userID int64) (model.DashboardStats, error) {
	keywords, err := s.ListKeywords(ctx, userID)
	if err != nil {
		return model.DashboardStats{}, err
	}
	return model.ComputeStats(keywords), nil
}

func (s *automationService) Dashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	keywords, err := s.ListKeywords(ctx, userID)
	if err != nil {
		return nil, err
	}

	active := make([]model.Keyword, 0, len(keywords))
	for _, k := range keywords {
		if k.Enabled {
			active = append(active, k)
		}
	}

	return &Dashboard{
		Stats:          model.ComputeStats(keywords),
		ActiveKeywords: active,
		TotalKeywords:  len(keywords),
	}, nil
}

// notify publishes a change event. The write has already succeeded, so a
// failure here is logged and swallowed.
func (s *automationService) notify(ctx context.Context, userID int64, entity queue.Entity, entityID int64, action queue.Action) {
	err := s.changes.Publish(ctx, queue.ChangeEvent{
		UserID:   userID,
		EntityID: entityID,
		Entity:   entity,
		Action:   action,
		TraceID:  logger.TraceID(ctx),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to publish change event",
			"error", err,
			"entity", entity,
			"entity_id", entityID,
			"action", action,
		)
	}
}

func getOrCreateConfig(ctx context.Context, configs store.AutomationConfigStore, userID int64) (*model.AutomationConfig, error) {
	cfg := model.DefaultAutomationConfig(userID)
	cfg.ID = id.New()
	if err := configs.GetOrCreate(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func withAutomationFields(ctx context.Context, userID int64, keywordID *int64) context.Context {
	return logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(userID),
		KeywordID: keywordID,
		Component: "replyflow.service.automation",
	})
}
