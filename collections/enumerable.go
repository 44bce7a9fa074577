package collections

// Enumerable is the read-only query surface shared by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// implementation that supports both callback and path queries.
//
// Portability note: this maps to an Iterable interface in TypeScript or
// Java, or a Sequence protocol in Python.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Filter returns the items for which fn returns true.
	Filter(fn func(T, int) bool) *Collection[T]

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// PluckPath returns the value at a dot-notation path for every item.
	PluckPath(path string) *Collection[any]

	// Where keeps the items whose value at path satisfies op against value.
	Where(path, op string, value any) *Collection[T]
}

var _ Enumerable[any] = (*Collection[any])(nil)
