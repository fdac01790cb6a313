package ports

import "context"

// Identifiable is implemented by every record a Store holds.
type Identifiable interface {
	// Identity returns the record's store key.
	Identity() string
}

// Patch mutates the current value of a record in place. Returning an error
// aborts the update: nothing is written and the error reaches the caller
// unchanged.
type Patch[T any] func(current *T) error

// Store is a keyed record collection. Lookups are exact-match on the key;
// callers normalize identifiers before calling in.
//
// Only backend failures are reported through error. A missing record is
// signalled by the bool return, never by an error.
type Store[T Identifiable] interface {
	// Get returns the record stored under id.
	Get(ctx context.Context, id string) (T, bool, error)

	// GetAll returns every record in insertion order.
	GetAll(ctx context.Context) ([]T, error)

	// Create inserts rec under rec.Identity(), replacing any existing record.
	// Repeating a Create with the same record is harmless.
	Create(ctx context.Context, rec T) (T, error)

	// Update applies patch to the record stored under id and returns the
	// merged result. Fields the patch leaves alone keep their values.
	// The read-patch-write cycle is atomic with respect to other updates of
	// the same id. Returns false without side effects when id is absent.
	Update(ctx context.Context, id string, patch Patch[T]) (T, bool, error)

	// Delete removes the record stored under id and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// Exists reports whether a record is stored under id.
	Exists(ctx context.Context, id string) (bool, error)
}
