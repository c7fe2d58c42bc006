// Package storage implements the durable key-value store backing the mock
// backend. It mirrors the contract of the browser storage the web client
// uses: string keys, UTF-8 JSON values, upsert semantics, and a nil result
// for absent keys.
package storage

import "context"

// Well-known keys. The web client owns this namespace, so the names are
// part of the contract and must not change.
const (
	KeyCurrentUser       = "currentUser"
	KeyUserVerifications = "userVerifications"
	KeyTransactions      = "transactions"
)

// Store is a string-keyed durable store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - Delete is a no-op for absent keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
