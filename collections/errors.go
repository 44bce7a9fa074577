package collections

import "errors"

// Sentinel errors returned by Collection and Record operations. Lookups
// that may miss return a default instead; these are reserved for calls
// that require a value to exist.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrMissingKey is returned by [Record.GetOrFail] when the key is absent.
	ErrMissingKey = errors.New("collections: key not present in record")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
