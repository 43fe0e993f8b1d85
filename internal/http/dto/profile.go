package dto

import (
	"time"

	"replyflow.app/api/internal/model"
)

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"max=255"`
}

type ProfileResponse struct {
	ID          int64     `json:"id,string"`
	Email       string    `json:"email"`
	FullName    *string   `json:"full_name,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	DisplayName string    `json:"display_name"`
	Initials    string    `json:"initials"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToProfileResponse(p *model.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		AvatarURL:   p.AvatarURL,
		DisplayName: p.DisplayName(),
		Initials:    p.Initials(),
		CreatedAt:   p.CreatedAt,
	}
}

func (r ProfileResponse) ToModel() model.Profile {
	return model.Profile{
		ID:        r.ID,
		Email:     r.Email,
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
		CreatedAt: r.CreatedAt,
	}
}
