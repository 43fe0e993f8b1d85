package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"replyflow.app/api/core/db/sqlc"
	"replyflow.app/api/internal/model"
)

type profileStore struct {
	queries *sqlc.Queries
}

func newProfileStore(queries *sqlc.Queries) ProfileStore {
	return &profileStore{queries: queries}
}

func (s *profileStore) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	row, err := s.queries.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func (s *profileStore) UpsertByWorkOSID(ctx context.Context, profile *model.Profile) error {
	row, err := s.queries.UpsertProfileByWorkOSID(ctx, sqlc.UpsertProfileByWorkOSIDParams{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		AvatarUrl: profile.AvatarURL,
		WorkosID:  profile.WorkOSID,
	})
	if err != nil {
		return err
	}
	*profile = *toProfileModel(row)
	return nil
}

func (s *profileStore) UpdateFullName(ctx context.Context, id int64, fullName *string) (*model.Profile, error) {
	row, err := s.queries.UpdateProfileFullName(ctx, sqlc.UpdateProfileFullNameParams{
		ID:       id,
		FullName: fullName,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func toProfileModel(row sqlc.Profile) *model.Profile {
	return &model.Profile{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		AvatarURL: row.AvatarUrl,
		WorkOSID:  row.WorkosID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
