package model

import "time"

const DefaultDelaySeconds = 5

// AutomationConfig holds the per-user credentials and behaviour switches the
// external automation engine reads. There is exactly one row per user.
type AutomationConfig struct {
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	AccessToken    string    `json:"access_token"`
	InstagramID    string    `json:"instagram_id"`
	BaseURL        string    `json:"base_url"`
	APIKey         string    `json:"api_key"`
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	DelaySeconds   int       `json:"delay_seconds"`
	ReplyToComment bool      `json:"reply_to_comment"`
	SendDM         bool      `json:"send_dm"`
}

// DefaultAutomationConfig is the row provisioned on a user's first read.
func DefaultAutomationConfig(userID int64) AutomationConfig {
	return AutomationConfig{
		UserID:         userID,
		DelaySeconds:   DefaultDelaySeconds,
		ReplyToComment: true,
		SendDM:         true,
	}
}

type AutomationConfigPatch struct {
	AccessToken    *string `json:"access_token,omitempty"`
	InstagramID    *string `json:"instagram_id,omitempty"`
	BaseURL        *string `json:"base_url,omitempty"`
	APIKey         *string `json:"api_key,omitempty"`
	DelaySeconds   *int    `json:"delay_seconds,omitempty"`
	ReplyToComment *bool   `json:"reply_to_comment,omitempty"`
	SendDM         *bool   `json:"send_dm,omitempty"`
}

func (p AutomationConfigPatch) Apply(c *AutomationConfig) {
	if p.AccessToken != nil {
		c.AccessToken = *p.AccessToken
	}
	if p.InstagramID != nil {
		c.InstagramID = *p.InstagramID
	}
	if p.BaseURL != nil {
		c.BaseURL = *p.BaseURL
	}
	if p.APIKey != nil {
		c.APIKey = *p.APIKey
	}
	if p.DelaySeconds != nil {
		c.DelaySeconds = *p.DelaySeconds
	}
	if p.ReplyToComment != nil {
		c.ReplyToComment = *p.ReplyToComment
	}
	if p.SendDM != nil {
		c.SendDM = *p.SendDM
	}
}
