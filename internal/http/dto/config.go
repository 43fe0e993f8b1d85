package dto

import (
	"time"

	"replyflow.app/api/internal/model"
)

type UpdateConfigRequest struct {
	AccessToken    *string `json:"access_token,omitempty" binding:"omitempty,max=1024"`
	InstagramID    *string `json:"instagram_id,omitempty" binding:"omitempty,max=64"`
	BaseURL        *string `json:"base_url,omitempty" binding:"omitempty,max=2048"`
	APIKey         *string `json:"api_key,omitempty" binding:"omitempty,max=512"`
	DelaySeconds   *int    `json:"delay_seconds,omitempty" binding:"omitempty,min=0,max=3600"`
	ReplyToComment *bool   `json:"reply_to_comment,omitempty"`
	SendDM         *bool   `json:"send_dm,omitempty"`
}

func (r UpdateConfigRequest) ToPatch() model.AutomationConfigPatch {
	return model.AutomationConfigPatch{
		AccessToken:    r.AccessToken,
		InstagramID:    r.InstagramID,
		BaseURL:        r.BaseURL,
		APIKey:         r.APIKey,
		DelaySeconds:   r.DelaySeconds,
		ReplyToComment: r.ReplyToComment,
		SendDM:         r.SendDM,
	}
}

type ConfigResponse struct {
	ID             int64     `json:"id,string"`
	AccessToken    string    `json:"access_token"`
	InstagramID    string    `json:"instagram_id"`
	BaseURL        string    `json:"base_url"`
	APIKey         string    `json:"api_key"`
	DelaySeconds   int       `json:"delay_seconds"`
	ReplyToComment bool      `json:"reply_to_comment"`
	SendDM         bool      `json:"send_dm"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToConfigResponse(c *model.AutomationConfig) *ConfigResponse {
	return &ConfigResponse{
		ID:             c.ID,
		AccessToken:    c.AccessToken,
		InstagramID:    c.InstagramID,
		BaseURL:        c.BaseURL,
		APIKey:         c.APIKey,
		DelaySeconds:   c.DelaySeconds,
		ReplyToComment: c.ReplyToComment,
		SendDM:         c.SendDM,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r ConfigResponse) ToModel() model.AutomationConfig {
	return model.AutomationConfig{
		ID:             r.ID,
		AccessToken:    r.AccessToken,
		InstagramID:    r.InstagramID,
		BaseURL:        r.BaseURL,
		APIKey:         r.APIKey,
		DelaySeconds:   r.DelaySeconds,
		ReplyToComment: r.ReplyToComment,
		SendDM:         r.SendDM,
		UpdatedAt:      r.UpdatedAt,
	}
}
