// Package store provides the persistence collaborators for the seating
// widget: simple key-value slots scoped to one theater, with get/put
// semantics and no transactions or schema enforcement.
package store

import "context"

// KV is the abstract slot store the seat collection is cached in. Get reports
// absence through its second return rather than an error. Implementations are
// scoped to a single theater at construction.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
