package kv

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Blob stores each key as one object in a bucket. With fileblob this is
// the on-device layout: one file per key under a directory.
type Blob struct {
	bucket *blob.Bucket
}

// NewBlob wraps an open bucket. Close closes the bucket.
func NewBlob(bucket *blob.Bucket) *Blob {
	return &Blob{bucket: bucket}
}

// OpenBlob opens a bucket by url, e.g. file:///var/lib/notes, mem:// or s3://bucket.
func OpenBlob(ctx context.Context, url string) (*Blob, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", url, err)
	}
	return NewBlob(bucket), nil
}

func (b *Blob) Get(ctx context.Context, key string) (string, error) {
	data, err := b.bucket.ReadAll(ctx, key)
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		return "", ErrNotFound
	case err != nil:
		return "", fmt.Errorf("blob read %s: %w", key, err)
	}
	return string(data), nil
}

func (b *Blob) Set(ctx context.Context, key, value string) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := b.bucket.WriteAll(ctx, key, []byte(value), opts); err != nil {
		return fmt.Errorf("blob write %s: %w", key, err)
	}
	return nil
}

func (b *Blob) Delete(ctx context.Context, key string) error {
	err := b.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return fmt.Errorf("blob delete %s: %w", key, err)
	}
	return nil
}

func (b *Blob) Close() error {
	return b.bucket.Close()
}
