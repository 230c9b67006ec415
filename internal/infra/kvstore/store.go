// Package kvstore keeps the gateway's short-lived hints: cleaning windows,
// cleaning progress and cached module flags. Values are opaque bytes, and
// a missing or expired key is reported as infra.KindNotFound.
package kvstore

import (
	"context"
	"time"
)

const opTimeout = 3 * time.Second

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func namespaced(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}
