// Package postgres keeps durable store slots in a PostgreSQL table through GORM.
package postgres

import (
	"context"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errNilSlotValue = errors.New("slot value must not be nil")

// slotStore implements the repository.DurableStore interface on one table.
type slotStore struct {
	db     *gorm.DB
	prefix string
}

// NewSlotStore is the constructor for slotStore.
func NewSlotStore(db *gorm.DB, prefix string) repository.DurableStore {
	return &slotStore{
		db:     db,
		prefix: prefix,
	}
}

// Migrate creates the slot table if it does not exist.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return errors.Wrap(db.WithContext(ctx).AutoMigrate(&model.SlotModel{}), "failed to migrate slot table")
}

// Get retrieves the JSON stored under key.
func (repo *slotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var slotM model.SlotModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", repo.prefix+key).
		First(&slotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to read slot")
	}

	return slotM.Value, nil
}

// Set upserts the slot.
func (repo *slotStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		return domainerrors.NewStoreError(errNilSlotValue, key)
	}

	slotM := &model.SlotModel{
		Key:       repo.prefix + key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(slotM).Error; err != nil {
		return domainerrors.NewStoreError(err, "failed to write slot")
	}

	return nil
}

// Delete removes the slot. Missing slots are ignored.
func (repo *slotStore) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("key = ?", repo.prefix+key).
		Delete(&model.SlotModel{}).Error; err != nil {
		return domainerrors.NewStoreError(err, "failed to delete slot")
	}

	return nil
}

// Close is a no-op; the connection pool is closed by its own lifecycle hook.
func (repo *slotStore) Close() error {
	return nil
}
