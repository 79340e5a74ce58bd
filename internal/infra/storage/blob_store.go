// Package storage provides durable key/value stores backing the session.
package storage

import (
	"context"
	"net/url"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob" // registers mem://
	"gocloud.dev/gcerrors"
)

// blobStore keeps each key as one object of a gocloud.dev bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// OpenBlobStore opens a bucket URL. file:// buckets get their directory
// created on demand; any other scheme goes through the gocloud URL mux.
func OpenBlobStore(ctx context.Context, bucketURL string) (service.KeyValueStore, error) {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse bucket url %q", bucketURL)
	}

	var bucket *blob.Bucket
	if u.Scheme == "file" {
		bucket, err = fileblob.OpenBucket(u.Path, &fileblob.Options{CreateDir: true})
	} else {
		bucket, err = blob.OpenBucket(ctx, bucketURL)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", bucketURL)
	}

	return NewBlobStore(bucket), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket) service.KeyValueStore {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", service.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "read %s", key)
	}

	return string(data), nil
}

func (s *blobStore) Set(ctx context.Context, key, value string) error {
	opts := &blob.WriterOptions{ContentType: "text/plain; charset=utf-8"}
	if err := s.bucket.WriteAll(ctx, key, []byte(value), opts); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
