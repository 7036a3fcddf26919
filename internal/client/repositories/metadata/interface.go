// Package metadata is the local key/value table backing the client's
// persisted state (token, cached profile, theme).
package metadata

import (
	"context"
)

// Repository is a string-keyed blob store. Get returns (nil, nil) for a
// missing key; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
