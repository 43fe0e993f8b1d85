package dto

import (
	"time"

	"replyflow.app/api/internal/model"
)

type CreateKeywordRequest struct {
	Word       string `json:"word" binding:"required,max=100"`
	Link       string `json:"link" binding:"required,max=2048"`
	Message    string `json:"message" binding:"max=1000"`
	ButtonText string `json:"button_text" binding:"max=80"`
	Enabled    *bool  `json:"enabled,omitempty"`
}

// ToDraft defaults Enabled to true, matching the column default.
func (r CreateKeywordRequest) ToDraft() model.KeywordDraft {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return model.KeywordDraft{
		Word:       r.Word,
		Link:       r.Link,
		Message:    r.Message,
		ButtonText: r.ButtonText,
		Enabled:    enabled,
	}
}

type UpdateKeywordRequest struct {
	Word       *string `json:"word,omitempty" binding:"omitempty,max=100"`
	Link       *string `json:"link,omitempty" binding:"omitempty,max=2048"`
	Message    *string `json:"message,omitempty" binding:"omitempty,max=1000"`
	ButtonText *string `json:"button_text,omitempty" binding:"omitempty,max=80"`
	Enabled    *bool   `json:"enabled,omitempty"`
}

func (r UpdateKeywordRequest) ToPatch() model.KeywordPatch {
	return model.KeywordPatch{
		Word:       r.Word,
		Link:       r.Link,
		Message:    r.Message,
		ButtonText: r.ButtonText,
		Enabled:    r.Enabled,
	}
}

type KeywordResponse struct {
	ID            int64     `json:"id,string"`
	Word          string    `json:"word"`
	Enabled       bool      `json:"enabled"`
	Link          string    `json:"link"`
	Message       string    `json:"message"`
	ButtonText    string    `json:"button_text"`
	TriggersCount int       `json:"triggers_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToKeywordResponse(k *model.Keyword) *KeywordResponse {
	return &KeywordResponse{
		ID:            k.ID,
		Word:          k.Word,
		Enabled:       k.Enabled,
		Link:          k.Link,
		Message:       k.Message,
		ButtonText:    k.ButtonText,
		TriggersCount: k.TriggersCount,
		CreatedAt:     k.CreatedAt,
		UpdatedAt:     k.UpdatedAt,
	}
}

func ToKeywordResponses(keywords []model.Keyword) []KeywordResponse {
	out := make([]KeywordResponse, 0, len(keywords))
	for i := range keywords {
		out = append(out, *ToKeywordResponse(&keywords[i]))
	}
	return out
}

func (r KeywordResponse) ToModel() model.Keyword {
	return model.Keyword{
		ID:            r.ID,
		Word:          r.Word,
		Enabled:       r.Enabled,
		Link:          r.Link,
		Message:       r.Message,
		ButtonText:    r.ButtonText,
		TriggersCount: r.TriggersCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type ListKeywordsResponse struct {
	Keywords []KeywordResponse `json:"keywords"`
}
