package ports

import "context"

// KVStore is the persistence port behind the snippet manager. It mirrors the
// browser's local storage: string keys mapping to string values, where a
// missing key is reported through the found flag rather than an error.
// Implementations must be safe for concurrent use.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
