// Package dashboard keeps one user's keywords and automation config in memory,
// in step with the remote store. Local state changes only after the remote
// write succeeds, so a failed call never needs rolling back.
//
// Load replaces the local list wholesale, so it excludes mutations: a
// mutation started during a Load waits for it and applies to the fresh list.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"replyflow.app/api/common/logger"
	"replyflow.app/api/internal/model"
)

// Backend is the signed-in user's view of the remote store. Implementations
// are already bound to that user.
type Backend interface {
	ListKeywords(ctx context.Context) ([]model.Keyword, error)
	CreateKeyword(ctx context.Context, draft model.KeywordDraft) (*model.Keyword, error)
	UpdateKeyword(ctx context.Context, id int64, patch model.KeywordPatch) (*model.Keyword, error)
	DeleteKeyword(ctx context.Context, id int64) error
	ToggleKeyword(ctx context.Context, id int64) (*model.Keyword, error)
	GetConfig(ctx context.Context) (*model.AutomationConfig, error)
	UpdateConfig(ctx context.Context, patch model.AutomationConfigPatch) (*model.AutomationConfig, error)
}

type State struct {
	backend Backend

	// syncMu is held exclusively by Load and shared by mutations.
	syncMu sync.RWMutex

	mu       sync.RWMutex
	keywords []model.Keyword
	config   *model.AutomationConfig
	loading  bool

	// entity serialises remote mutations per keyword so local results land
	// in the order the backend applied them. An entry lives only while some
	// call holds or waits for it.
	entityMu sync.Mutex
	entity   map[int64]*keywordLock
}

type keywordLock struct {
	sync.Mutex
	refs int
}

// New binds a State to backend. A nil backend means nobody is signed in:
// every operation is a no-op and the state stays empty.
func New(backend Backend) *State {
	return &State{backend: backend, entity: make(map[int64]*keywordLock)}
}

// lockKeyword takes the shared sync lock and the lock for id, and returns the
// matching release.
func (s *State) lockKeyword(id int64) func() {
	s.syncMu.RLock()

	s.entityMu.Lock()
	l, ok := s.entity[id]
	if !ok {
		l = &keywordLock{}
		s.entity[id] = l
	}
	l.refs++
	s.entityMu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		s.entityMu.Lock()
		if l.refs--; l.refs == 0 {
			delete(s.entity, id)
		}
		s.entityMu.Unlock()

		s.syncMu.RUnlock()
	}
}

func (s *State) keywordLocks() int {
	s.entityMu.Lock()
	defer s.entityMu.Unlock()
	return len(s.entity)
}

func (s *State) signedIn() bool {
	return s.backend != nil
}

// Load fetches keywords (newest first) and the config, which the backend
// provisions with defaults on first read.
func (s *State) Load(ctx context.Context) error {
	if !s.signedIn() {
		return nil
	}
	ctx = withComponent(ctx)

	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	keywords, err := s.backend.ListKeywords(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load keywords", "error", err)
		return fmt.Errorf("loading keywords: %w", err)
	}

	cfg, err := s.backend.GetConfig(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load automation config", "error", err)
		return fmt.Errorf("loading automation config: %w", err)
	}

	s.mu.Lock()
	s.keywords = append([]model.Keyword(nil), keywords...)
	s.config = cfg
	s.mu.Unlock()

	slog.DebugContext(ctx, "dashboard loaded", "keywords", len(keywords))
	return nil
}

// Loading reports whether Load is in flight. Data is not valid until it clears.
func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *State) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// AddKeyword persists draft as is; required-field checks belong to the caller.
// Signed out, it returns the zero Keyword and no error.
func (s *State) AddKeyword(ctx context.Context, draft model.KeywordDraft) (model.Keyword, error) {
	if !s.signedIn() {
		return model.Keyword{}, nil
	}
	ctx = withComponent(ctx)

	s.syncMu.RLock()
	defer s.syncMu.RUnlock()

	kw, err := s.backend.CreateKeyword(ctx, draft)
	if err != nil {
		slog.ErrorContext(ctx, "failed to add keyword", "error", err, "word", draft.Word)
		return model.Keyword{}, fmt.Errorf("adding keyword: %w", err)
	}

	s.mu.Lock()
	s.keywords = append([]model.Keyword{*kw}, s.keywords...)
	s.mu.Unlock()

	return *kw, nil
}

// UpdateKeyword merges patch into the local entry once the backend accepts it.
func (s *State) UpdateKeyword(ctx context.Context, id int64, patch model.KeywordPatch) error {
	if !s.signedIn() {
		return nil
	}
	ctx = withKeyword(ctx, id)
	defer s.lockKeyword(id)()

	if _, err := s.backend.UpdateKeyword(ctx, id, patch); err != nil {
		slog.ErrorContext(ctx, "failed to update keyword", "error", err)
		return fmt.Errorf("updating keyword: %w", err)
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		patch.Apply(&s.keywords[i])
	}
	s.mu.Unlock()

	return nil
}

func (s *State) DeleteKeyword(ctx context.Context, id int64) error {
	if !s.signedIn() {
		return nil
	}
	ctx = withKeyword(ctx, id)
	defer s.lockKeyword(id)()

	if err := s.backend.DeleteKeyword(ctx, id); err != nil {
		slog.ErrorContext(ctx, "failed to delete keyword", "error", err)
		return fmt.Errorf("deleting keyword: %w", err)
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.keywords = append(s.keywords[:i], s.keywords[i+1:]...)
	}
	s.mu.Unlock()

	return nil
}

// ToggleKeyword asks the backend to flip enabled and adopts the value it
// stored, rather than negating the local copy.
func (s *State) ToggleKeyword(ctx context.Context, id int64) (bool, error) {
	if !s.signedIn() {
		return false, nil
	}
	ctx = withKeyword(ctx, id)
	defer s.lockKeyword(id)()

	kw, err := s.backend.ToggleKeyword(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to toggle keyword", "error", err)
		return false, fmt.Errorf("toggling keyword: %w", err)
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.keywords[i].Enabled = kw.Enabled
	}
	s.mu.Unlock()

	return kw.Enabled, nil
}

func (s *State) UpdateConfig(ctx context.Context, patch model.AutomationConfigPatch) error {
	if !s.signedIn() {
		return nil
	}
	ctx = withComponent(ctx)

	s.syncMu.RLock()
	defer s.syncMu.RUnlock()

	updated, err := s.backend.UpdateConfig(ctx, patch)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update automation config", "error", err)
		return fmt.Errorf("updating automation config: %w", err)
	}

	s.mu.Lock()
	if s.config == nil {
		s.config = updated
	} else {
		patch.Apply(s.config)
	}
	s.mu.Unlock()

	return nil
}

// Keywords returns a copy of the local list, newest first.
func (s *State) Keywords() []model.Keyword {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Keyword(nil), s.keywords...)
}

// Config returns a copy of the local config, or nil before a successful Load.
func (s *State) Config() *model.AutomationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return nil
	}
	cfg := *s.config
	return &cfg
}

// Stats is recomputed from the current keywords on every call.
func (s *State) Stats() model.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.ComputeStats(s.keywords)
}

// Keyword looks up one local entry.
func (s *State) Keyword(id int64) (model.Keyword, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.keywords[i], true
	}
	return model.Keyword{}, false
}

// indexOf must be called with s.mu held.
func (s *State) indexOf(id int64) int {
	for i := range s.keywords {
		if s.keywords[i].ID == id {
			return i
		}
	}
	return -1
}

func withComponent(ctx context.Context) context.Context {
	return logger.WithLogFields(ctx, logger.LogFields{Component: "replyflow.dashboard"})
}

func withKeyword(ctx context.Context, id int64) context.Context {
	return logger.WithLogFields(withComponent(ctx), logger.LogFields{KeywordID: logger.Ptr(id)})
}
