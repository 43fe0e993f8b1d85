package service

import (
	"context"

	"replyflow.app/api/common/logger"
	"replyflow.app/api/core/db"
	"replyflow.app/api/core/db/sqlc"
	"replyflow.app/api/internal/store"
)

// StoreProvider hands a transactional operation the stores bound to its tx.
type StoreProvider interface {
	Keywords() store.KeywordStore
	AutomationConfigs() store.AutomationConfigStore
}

// TxRunner commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type pgTxRunner struct {
	db *db.DB
}

func NewTxRunner(database *db.DB) TxRunner {
	return &pgTxRunner{db: database}
}

func (r *pgTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	sc := logger.StartSpan(ctx, "db.tx")
	defer sc.End()

	err := r.db.WithTx(sc.Context(), func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
	sc.RecordError(err)
	return err
}
