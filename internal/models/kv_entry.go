package models

import (
	"context"
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// KVEntry is a single slot of the session-scoped key-value store. The pair
// (scope, key) is unique; writes overwrite the previous value.
type KVEntry struct {
	bun.BaseModel `bun:"table:kv_entries,alias:kv"`

	ID        int64           `bun:"id,pk,autoincrement"`
	Scope     string          `bun:"scope,notnull"`
	Key       string          `bun:"key,notnull"`
	Value     json.RawMessage `bun:"value,type:jsonb,notnull"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero,default:now()"`
}

var _ bun.BeforeInsertHook = (*KVEntry)(nil)

func (e *KVEntry) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	e.UpdatedAt = time.Now()
	return nil
}
