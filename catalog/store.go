package catalog

import (
	"context"
)

// Store is the capability contract every catalog-backing implementation must
// support. The base engine (memoryengine.Store) and all decorators
// (AuditDecorator, SortedView) are substitutable wherever a Store is expected.
//
// The context is carried for observability correlation (contextual logging,
// tracing); operations are synchronous and do not honor cancellation.
//
// The error returns exist for the sake of the contract, not the base engine:
// the in-memory engine never fails, but decorators must be able to propagate
// unexpected failures unmodified rather than swallowing them.
type Store interface {
	// Add inserts a record. It always succeeds for a well-formed Record;
	// the store does not re-validate what the Manager already checked.
	Add(ctx context.Context, record Record) error

	// Remove deletes the first record whose title matches case-insensitively.
	// It reports whether a removal occurred; absence of a match is a normal
	// outcome, not an error.
	Remove(ctx context.Context, title string) (bool, error)

	// List returns a snapshot of all current records. Callers may mutate the
	// returned slice without affecting the store.
	List(ctx context.Context) (Records, error)
}
