package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"replyflow.app/api/core/db/sqlc"
	"replyflow.app/api/internal/model"
)

type keywordStore struct {
	queries *sqlc.Queries
}

func newKeywordStore(queries *sqlc.Queries) KeywordStore {
	return &keywordStore{queries: queries}
}

func (s *keywordStore) ListByUser(ctx context.Context, userID int64) ([]model.Keyword, error) {
	rows, err := s.queries.ListKeywordsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toKeywordModels(rows), nil
}

func (s *keywordStore) GetByID(ctx context.Context, userID, id int64) (*model.Keyword, error) {
	row, err := s.queries.GetKeyword(ctx, sqlc.GetKeywordParams{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toKeywordModel(row), nil
}

func (s *keywordStore) Create(ctx context.Context, keyword *model.Keyword) error {
	row, err := s.queries.CreateKeyword(ctx, sqlc.CreateKeywordParams{
		ID:         keyword.ID,
		UserID:     keyword.UserID,
		Word:       keyword.Word,
		Enabled:    keyword.Enabled,
		Link:       keyword.Link,
		Message:    keyword.Message,
		ButtonText: keyword.ButtonText,
	})
	if err != nil {
		return err
	}
	*keyword = *toKeywordModel(row)
	return nil
}

func (s *keywordStore) Update(ctx context.Context, userID, id int64, patch model.KeywordPatch) (*model.Keyword, error) {
	row, err := s.queries.UpdateKeyword(ctx, sqlc.UpdateKeywordParams{
		Word:       patch.Word,
		Enabled:    patch.Enabled,
		Link:       patch.Link,
		Message:    patch.Message,
		ButtonText: patch.ButtonText,
		ID:         id,
		UserID:     userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toKeywordModel(row), nil
}

func (s *keywordStore) Toggle(ctx context.Context, userID, id int64) (*model.Keyword, error) {
	row, err := s.queries.ToggleKeyword(ctx, sqlc.ToggleKeywordParams{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toKeywordModel(row), nil
}

func (s *keywordStore) Delete(ctx context.Context, userID, id int64) error {
	return s.queries.DeleteKeyword(ctx, sqlc.DeleteKeywordParams{ID: id, UserID: userID})
}

func toKeywordModel(row sqlc.Keyword) *model.Keyword {
	return &model.Keyword{
		ID:            row.ID,
		UserID:        row.UserID,
		Word:          row.Word,
		Enabled:       row.Enabled,
		Link:          row.Link,
		Message:       row.Message,
		ButtonText:    row.ButtonText,
		TriggersCount: int(row.TriggersCount),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func toKeywordModels(rows []sqlc.Keyword) []model.Keyword {
	result := make([]model.Keyword, len(rows))
	for i, row := range rows {
		result[i] = *toKeywordModel(row)
	}
	return result
}
