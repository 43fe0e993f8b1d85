package store

import (
	"replyflow.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Keywords() KeywordStore {
	return newKeywordStore(s.queries)
}

func (s *Stores) AutomationConfigs() AutomationConfigStore {
	return newAutomationConfigStore(s.queries)
}

func (s *Stores) Profiles() ProfileStore {
	return newProfileStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}
