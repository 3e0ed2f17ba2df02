package repository

import "context"

// DB is the minimal interface needed for liveness checks.
type DB interface {
	Ping(ctx context.Context) error
}
