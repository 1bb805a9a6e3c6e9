package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// SyncCursorStore defines the interface for storing and retrieving the partner
// financial sync highwatermark
type SyncCursorStore interface {
	// GetSyncHighwatermark retrieves the opaque highwatermark token returned by
	// the last completed partner sync for a publisher
	GetSyncHighwatermark(ctx context.Context, publisher string) (string, error)
	// SetSyncHighwatermark stores the highwatermark token for the next sync
	SetSyncHighwatermark(ctx context.Context, publisher string, highwatermark string) error
}

type syncCursorStore struct {
	db *gorm.DB
}

// NewSyncCursorStore creates a new sync cursor store
func NewSyncCursorStore(db *gorm.DB) SyncCursorStore {
	return &syncCursorStore{db: db}
}

// GetSyncHighwatermark retrieves the opaque highwatermark token returned by
// the last completed partner sync for a publisher
func (s *syncCursorStore) GetSyncHighwatermark(ctx context.Context, publisher string) (string, error) {
	key := fmt.Sprintf("partner_sync_highwatermark:%s", publisher)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "0", nil // "0" means no sync has completed yet
		}
		return "", fmt.Errorf("failed to get sync highwatermark: %w", err)
	}

	return kv.Value, nil
}

// SetSyncHighwatermark stores the highwatermark token for the next sync
func (s *syncCursorStore) SetSyncHighwatermark(ctx context.Context, publisher string, highwatermark string) error {
	key := fmt.Sprintf("partner_sync_highwatermark:%s", publisher)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: highwatermark,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set sync highwatermark: %w", err)
	}

	return nil
}
