package kvstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/resicare/resicare-api/internal/models"
	"github.com/uptrace/bun"
)

// DBStore persists entries in the kv_entries table. One row per
// (scope, key); Set upserts, overwriting the previous value.
type DBStore struct {
	db *bun.DB
}

func NewDBStore(db *bun.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Get(ctx context.Context, scope, key string, dest any) (bool, error) {
	entry := new(models.KVEntry)
	err := s.db.NewSelect().
		Model(entry).
		Where("scope = ?", scope).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *DBStore) Set(ctx context.Context, scope, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := &models.KVEntry{
		Scope: scope,
		Key:   key,
		Value: raw,
	}

	_, err = s.db.NewInsert().
		Model(entry).
		On("CONFLICT (scope, key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	return err
}

func (s *DBStore) Remove(ctx context.Context, scope, key string) error {
	_, err := s.db.NewDelete().
		Model((*models.KVEntry)(nil)).
		Where("scope = ?", scope).
		Where("key = ?", key).
		Exec(ctx)
	return err
}
