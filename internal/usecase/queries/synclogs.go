package queries

import (
	"context"
)

const defaultSyncLogLimit = 20

type SyncLogQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*SyncLogView, error)
}

type SyncLogReadStore interface {
	ListRecent(ctx context.Context, limit int) ([]*SyncLogView, error)
}

type syncLogQueriesImpl struct {
	readStore SyncLogReadStore
}

func NewSyncLogQueries(readStore SyncLogReadStore) SyncLogQueries {
	return &syncLogQueriesImpl{
		readStore: readStore,
	}
}

func (q *syncLogQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*SyncLogView, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultSyncLogLimit
	}
	return q.readStore.ListRecent(ctx, limit)
}
