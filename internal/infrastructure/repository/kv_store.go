package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys. Each aggregate persists as one JSON document under its key.
const (
	KeySales     = "sales"
	KeyInventory = "inventory"
	KeyUsers     = "users"
	KeySettings  = "settings"
	KeySequence  = "order_sequence"
	KeySession   = "current_session"
	KeyTheme     = "theme"
)

// DocStore is the raw document store the typed repositories are built on.
// KVStore is the Postgres-backed implementation; MemoryStore backs tests and
// ephemeral mode.
type DocStore interface {
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	Put(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// KVRecord is the persisted projection row: one JSON document per aggregate.
type KVRecord struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for the KVRecord model
func (KVRecord) TableName() string {
	return "kv_records"
}

// KVStore reads and writes JSON documents in the kv_records table. The typed
// repositories below are thin wrappers over it.
type KVStore struct {
	db *gorm.DB
}

// NewKVStore creates a new KV store over a GORM connection
func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{db: db}
}

// Get unmarshals the document stored under key into out. Returns false when
// the key has never been written.
func (s *KVStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	var rec KVRecord
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("kv get %s: %w", key, err)
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return false, fmt.Errorf("kv decode %s: %w", key, err)
	}
	return true, nil
}

// Put marshals value and upserts it under key
func (s *KVStore) Put(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv encode %s: %w", key, err)
	}
	rec := KVRecord{Key: key, Value: data}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key; missing keys are not an error
func (s *KVStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&KVRecord{}).Error
	if err != nil {
		return fmt.Errorf("kv delete %s: %w", key, err)
	}
	return nil
}
