package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"replyflow.app/api/internal/model"
)

var errRemote = errors.New("remote operation failed")

// fakeBackend is an in-memory store for one user. Setting fail makes every
// call return errRemote without touching the rows.
type fakeBackend struct {
	mu       sync.Mutex
	nextID   int64
	rows     []model.Keyword
	config   *model.AutomationConfig
	fail     bool
	loadGate chan struct{}

	configCreates int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 100}
}

// ListKeywords snapshots the rows before waiting on loadGate, the way a slow
// response reflects the store as of when the query ran.
func (f *fakeBackend) ListKeywords(context.Context) ([]model.Keyword, error) {
	f.mu.Lock()
	fail := f.fail
	rows := append([]model.Keyword(nil), f.rows...)
	gate := f.loadGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if fail {
		return nil, errRemote
	}
	return rows, nil
}

func (f *fakeBackend) CreateKeyword(_ context.Context, draft model.KeywordDraft) (*model.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errRemote
	}
	f.nextID++
	kw := model.Keyword{
		ID:         f.nextID,
		UserID:     1,
		Word:       draft.Word,
		Link:       draft.Link,
		Message:    draft.Message,
		ButtonText: draft.ButtonText,
		Enabled:    draft.Enabled,
		CreatedAt:  time.Unix(f.nextID, 0),
	}
	f.rows = append([]model.Keyword{kw}, f.rows...)
	return &kw, nil
}

func (f *fakeBackend) UpdateKeyword(_ context.Context, id int64, patch model.KeywordPatch) (*model.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errRemote
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			patch.Apply(&f.rows[i])
			kw := f.rows[i]
			return &kw, nil
		}
	}
	return nil, errRemote
}

func (f *fakeBackend) DeleteKeyword(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errRemote
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeBackend) ToggleKeyword(_ context.Context, id int64) (*model.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errRemote
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Enabled = !f.rows[i].Enabled
			kw := f.rows[i]
			return &kw, nil
		}
	}
	return nil, errRemote
}

func (f *fakeBackend) GetConfig(context.Context) (*model.AutomationConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errRemote
	}
	if f.config == nil {
		cfg := model.DefaultAutomationConfig(1)
		cfg.ID = 1
		f.config = &cfg
		f.configCreates++
	}
	cfg := *f.config
	return &cfg, nil
}

func (f *fakeBackend) UpdateConfig(_ context.Context, patch model.AutomationConfigPatch) (*model.AutomationConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errRemote
	}
	if f.config == nil {
		cfg := model.DefaultAutomationConfig(1)
		f.config = &cfg
	}
	patch.Apply(f.config)
	cfg := *f.config
	return &cfg, nil
}

func (f *fakeBackend) setFail(v bool) {
	f.mu.Lock()
	f.fail = v
	f.mu.Unlock()
}

func (f *fakeBackend) stored(id int64) (model.Keyword, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range f.rows {
		if k.ID == id {
			return k, true
		}
	}
	return model.Keyword{}, false
}
