package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"replyflow.app/api/core/db/sqlc"
	"replyflow.app/api/internal/model"
)

type automationConfigStore struct {
	queries *sqlc.Queries
}

func newAutomationConfigStore(queries *sqlc.Queries) AutomationConfigStore {
	return &automationConfigStore{queries: queries}
}

// GetOrCreate inserts defaults unless the user already has a row, and
// overwrites defaults with whichever row is stored. The insert and the read
// are one statement, so concurrent first loads see the same row.
func (s *automationConfigStore) GetOrCreate(ctx context.Context, defaults *model.AutomationConfig) error {
	row, err := s.queries.GetOrCreateAutomationConfig(ctx, sqlc.GetOrCreateAutomationConfigParams{
		ID:             defaults.ID,
		UserID:         defaults.UserID,
		AccessToken:    defaults.AccessToken,
		InstagramID:    defaults.InstagramID,
		BaseUrl:        defaults.BaseURL,
		ApiKey:         defaults.APIKey,
		DelaySeconds:   int32(defaults.DelaySeconds),
		ReplyToComment: defaults.ReplyToComment,
		SendDm:         defaults.SendDM,
	})
	if err != nil {
		return err
	}
	*defaults = *toAutomationConfigModel(row)
	return nil
}

func (s *automationConfigStore) Update(ctx context.Context, userID int64, patch model.AutomationConfigPatch) (*model.AutomationConfig, error) {
	var delay *int32
	if patch.DelaySeconds != nil {
		d := int32(*patch.DelaySeconds)
		delay = &d
	}

	row, err := s.queries.UpdateAutomationConfig(ctx, sqlc.UpdateAutomationConfigParams{
		AccessToken:    patch.AccessToken,
		InstagramID:    patch.InstagramID,
		BaseUrl:        patch.BaseURL,
		ApiKey:         patch.APIKey,
		DelaySeconds:   delay,
		ReplyToComment: patch.ReplyToComment,
		SendDm:         patch.SendDM,
		UserID:         userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAutomationConfigModel(row), nil
}

func toAutomationConfigModel(row sqlc.AutomationConfig) *model.AutomationConfig {
	return &model.AutomationConfig{
		ID:             row.ID,
		UserID:         row.UserID,
		AccessToken:    row.AccessToken,
		InstagramID:    row.InstagramID,
		BaseURL:        row.BaseUrl,
		APIKey:         row.ApiKey,
		DelaySeconds:   int(row.DelaySeconds),
		ReplyToComment: row.ReplyToComment,
		SendDM:         row.SendDm,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
