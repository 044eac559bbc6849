// Package memory holds the process-wide lock that serializes every write to
// the in-memory stores and the reads that traverse their indexes.
package memory

import (
	"context"
	"fmt"
	"sync"

	"rentals/infras/otel"
)

const otelScopeName = "memory"

type DB struct {
	mu   sync.RWMutex
	otel otel.Otel
}

func New(otel otel.Otel) *DB {
	return &DB{otel: otel}
}

// Update runs fn holding the exclusive lock. Repositories called from fn must
// not re-enter Update or View.
func (db *DB) Update(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, scope := db.otel.NewScope(ctx, otelScopeName, otelScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("update aborted: %w", err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	return fn(ctx)
}

// View runs fn holding the shared lock.
func (db *DB) View(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, scope := db.otel.NewScope(ctx, otelScopeName, otelScopeName+".View")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("view aborted: %w", err)
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	return fn(ctx)
}
