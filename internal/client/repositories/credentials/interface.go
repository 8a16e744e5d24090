package credentials

import (
	"context"
)

// Repository is durable key-value storage for session credentials: the
// bearer token, the role string and the cached profile JSON. It is scoped
// per installation, not per user; switching accounts overwrites prior values.
//
// Get returns (nil, nil) for a missing key. Set is an upsert. Delete and
// Clear are no-ops when nothing matches. No cross-key atomicity is promised
// here; callers that need it run against a transaction via dbx.WithTx.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
