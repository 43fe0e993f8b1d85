package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"replyflow.app/api/common/logger"
	"replyflow.app/api/internal/model"
	"replyflow.app/api/internal/store"
)

type ProfileService interface {
	Get(ctx context.Context, userID int64) (*model.Profile, error)
	UpdateFullName(ctx context.Context, userID int64, fullName string) (*model.Profile, error)
}

type profileService struct {
	profileStore store.ProfileStore
}

func NewProfileService(profileStore store.ProfileStore) ProfileService {
	return &profileService{profileStore: profileStore}
}

func (s *profileService) Get(ctx context.Context, userID int64) (*model.Profile, error) {
	profile, err := s.profileStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return profile, nil
}

// UpdateFullName trims the name; a blank name clears it.
func (s *profileService) UpdateFullName(ctx context.Context, userID int64, fullName string) (*model.Profile, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(userID),
		Component: "replyflow.service.profile",
	})

	var name *string
	if trimmed := strings.TrimSpace(fullName); trimmed != "" {
		name = &trimmed
	}

	profile, err := s.profileStore.UpdateFullName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		slog.ErrorContext(ctx, "failed to update profile", "error", err)
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return profile, nil
}
