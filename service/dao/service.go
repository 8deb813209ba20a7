package dao

import (
	"context"
)

// Service abstracts persistence of simulation entities. Implementations may
// keep records in memory, on disk or in an external store.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
