package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedStore wraps a BlobStore and waits on a token bucket before every
// request. Reads from an already opened Blob are not limited.
type RateLimitedStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewRateLimitedStore limits inner to r requests per second with the given
// burst.
func NewRateLimitedStore(inner BlobStore, r rate.Limit, burst int) *RateLimitedStore {
	return &RateLimitedStore{
		inner:   inner,
		limiter: rate.NewLimiter(r, burst),
	}
}

// Open waits for a token and opens the blob.
func (s *RateLimitedStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Open(ctx, name)
}

// Put waits for a token and writes the blob.
func (s *RateLimitedStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete waits for a token and removes the blob.
func (s *RateLimitedStore) Delete(ctx context.Context, name string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.inner.Delete(ctx, name)
}

// List waits for a token and lists the blobs starting with prefix.
func (s *RateLimitedStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.List(ctx, prefix)
}
