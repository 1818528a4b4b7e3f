// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"encoding/json"

	"storefront/internal/errors"
)

// ErrKeyNotFound is returned when a slot holds no value.
var ErrKeyNotFound = errors.New("key not found")

// DurableStore is a key-value store of JSON documents that survives restarts.
type DurableStore interface {
	// Get returns the raw JSON stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value under key. The write is complete when Set returns.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// LoadJSON decodes the value stored under key into a T.
// The boolean is false when the slot is empty.
func LoadJSON[T any](ctx context.Context, store DurableStore, key string) (T, bool, error) {
	var out T

	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return out, false, nil
	}
	if err != nil {
		return out, false, errors.Wrapf(err, "failed to read %s", key)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, errors.Wrapf(err, "failed to decode %s", key)
	}

	return out, true, nil
}

// SaveJSON encodes value and stores it under key.
func SaveJSON(ctx context.Context, store DurableStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	if err := store.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}
