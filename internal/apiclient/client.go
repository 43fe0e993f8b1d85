// Package apiclient talks to the replyflow HTTP API on behalf of one session.
// A *Client satisfies dashboard.Backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"replyflow.app/api/internal/http/dto"
	"replyflow.app/api/internal/model"
)

const sessionTokenHeader = "X-Session-Token"

var (
	ErrUnauthorized = errors.New("not signed in or session expired")
	ErrNotFound     = errors.New("not found")
)

// APIError is any non-2xx response not covered by a sentinel.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	sessionToken string
}

type Option func(*Client)

// WithHTTPClient uses hc for every request. A nil hc keeps the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the timeout on a copy of the current http.Client, so a
// client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

func New(baseURL, sessionToken string, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		baseURL:      strings.TrimRight(baseURL, "/"),
		sessionToken: sessionToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListKeywords(ctx context.Context) ([]model.Keyword, error) {
	var resp dto.ListKeywordsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/keywords", nil, &resp); err != nil {
		return nil, err
	}
	keywords := make([]model.Keyword, 0, len(resp.Keywords))
	for _, k := range resp.Keywords {
		keywords = append(keywords, k.ToModel())
	}
	return keywords, nil
}

func (c *Client) CreateKeyword(ctx context.Context, draft model.KeywordDraft) (*model.Keyword, error) {
	req := dto.CreateKeywordRequest{
		Word:       draft.Word,
		Link:       draft.Link,
		Message:    draft.Message,
		ButtonText: draft.ButtonText,
		Enabled:    &draft.Enabled,
	}
	var resp dto.KeywordResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/keywords", req, &resp); err != nil {
		return nil, err
	}
	kw := resp.ToModel()
	return &kw, nil
}

func (c *Client) UpdateKeyword(ctx context.Context, id int64, patch model.KeywordPatch) (*model.Keyword, error) {
	req := dto.UpdateKeywordRequest{
		Word:       patch.Word,
		Link:       patch.Link,
		Message:    patch.Message,
		ButtonText: patch.ButtonText,
		Enabled:    patch.Enabled,
	}
	var resp dto.KeywordResponse
	if err := c.do(ctx, http.MethodPatch, keywordPath(id), req, &resp); err != nil {
		return nil, err
	}
	kw := resp.ToModel()
	return &kw, nil
}

func (c *Client) DeleteKeyword(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, keywordPath(id), nil, nil)
}

func (c *Client) ToggleKeyword(ctx context.Context, id int64) (*model.Keyword, error) {
	var resp dto.KeywordResponse
	if err := c.do(ctx, http.MethodPost, keywordPath(id)+"/toggle", nil, &resp); err != nil {
		return nil, err
	}
	kw := resp.ToModel()
	return &kw, nil
}

func (c *Client) GetConfig(ctx context.Context) (*model.AutomationConfig, error) {
	var resp dto.ConfigResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/config", nil, &resp); err != nil {
		return nil, err
	}
	cfg := resp.ToModel()
	return &cfg, nil
}

func (c *Client) UpdateConfig(ctx context.Context, patch model.AutomationConfigPatch) (*model.AutomationConfig, error) {
	req := dto.UpdateConfigRequest{
		AccessToken:    patch.AccessToken,
		InstagramID:    patch.InstagramID,
		BaseURL:        patch.BaseURL,
		APIKey:         patch.APIKey,
		DelaySeconds:   patch.DelaySeconds,
		ReplyToComment: patch.ReplyToComment,
		SendDM:         patch.SendDM,
	}
	var resp dto.ConfigResponse
	if err := c.do(ctx, http.MethodPatch, "/api/v1/config", req, &resp); err != nil {
		return nil, err
	}
	cfg := resp.ToModel()
	return &cfg, nil
}

func (c *Client) Me(ctx context.Context) (*model.Profile, error) {
	var resp dto.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/profile", nil, &resp); err != nil {
		return nil, err
	}
	p := resp.ToModel()
	return &p, nil
}

// Contract fetches the server's engine contract as raw JSON.
func (c *Client) Contract(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/v1/contract", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.sessionToken != "" {
		req.Header.Set(sessionTokenHeader, c.sessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 300:
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func keywordPath(id int64) string {
	return "/api/v1/keywords/" + strconv.FormatInt(id, 10)
}
