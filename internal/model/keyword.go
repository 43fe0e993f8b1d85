package model

import "time"

// Keyword is a trigger word mapped to the reply the automation engine sends
// when an Instagram comment contains it. TriggersCount is only ever advanced
// by the engine.
type Keyword struct {
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Word          string    `json:"word"`
	Link          string    `json:"link"`
	Message       string    `json:"message"`
	ButtonText    string    `json:"button_text"`
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	TriggersCount int       `json:"triggers_count"`
	Enabled       bool      `json:"enabled"`
}

// KeywordDraft carries the user-supplied fields of a new keyword.
type KeywordDraft struct {
	Word       string `json:"word"`
	Link       string `json:"link"`
	Message    string `json:"message"`
	ButtonText string `json:"button_text"`
	Enabled    bool   `json:"enabled"`
}

// KeywordPatch is a partial update; nil fields are left untouched.
type KeywordPatch struct {
	Word       *string `json:"word,omitempty"`
	Link       *string `json:"link,omitempty"`
	Message    *string `json:"message,omitempty"`
	ButtonText *string `json:"button_text,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
}

func (p KeywordPatch) IsEmpty() bool {
	return p.Word == nil && p.Link == nil && p.Message == nil && p.ButtonText == nil && p.Enabled == nil
}

// Apply merges the supplied fields into k.
func (p KeywordPatch) Apply(k *Keyword) {
	if p.Word != nil {
		k.Word = *p.Word
	}
	if p.Link != nil {
		k.Link = *p.Link
	}
	if p.Message != nil {
		k.Message = *p.Message
	}
	if p.ButtonText != nil {
		k.ButtonText = *p.ButtonText
	}
	if p.Enabled != nil {
		k.Enabled = *p.Enabled
	}
}
