// Package store provides the durable key-value store backends.
package store

import (
	"context"
	"path/filepath"
	"strings"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const objectSuffix = ".json"

// blobStore keeps each slot as one JSON object in a gocloud bucket.
// Local file buckets write through a temp file and rename, so a reader never
// sees a half-written slot.
type blobStore struct {
	bucket *blob.Bucket
	prefix string
}

// NewBlobStore wraps an opened bucket. The store owns the bucket and closes it.
func NewBlobStore(bucket *blob.Bucket, prefix string) repository.DurableStore {
	return &blobStore{bucket: bucket, prefix: prefix}
}

// OpenBlobStore opens bucketURL and returns a store over it.
func OpenBlobStore(ctx context.Context, bucketURL, prefix string) (repository.DurableStore, error) {
	bucket, err := blob.OpenBucket(ctx, normalizeBucketURL(bucketURL))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewBlobStore(bucket, prefix), nil
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, s.objectKey(key))
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "blob read %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, s.objectKey(key), value, &blob.WriterOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return errors.Wrapf(err, "blob write %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, s.objectKey(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "blob delete %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *blobStore) objectKey(key string) string {
	return s.prefix + key + objectSuffix
}

// normalizeBucketURL turns a bare directory into a file bucket URL.
// Examples:
//   - "file:///var/lib/storefront" -> unchanged
//   - "mem://" -> unchanged
//   - "./.storefront" -> "file:///abs/path/.storefront?create_dir=true"
func normalizeBucketURL(source string) string {
	if strings.Contains(source, "://") {
		return source
	}

	dir, err := filepath.Abs(source)
	if err != nil {
		dir = filepath.Clean(source)
	}

	return "file://" + filepath.ToSlash(dir) + "?create_dir=true"
}
