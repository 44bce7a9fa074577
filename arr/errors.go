package arr

import "errors"

// Sentinel errors returned by the codec helpers. Path lookups never fail:
// missing paths resolve to defaults instead.
var (
	// ErrInvalidJSON is returned by [FromJSON] when the input is not valid
	// JSON.
	ErrInvalidJSON = errors.New("arr: invalid JSON")

	// ErrInvalidYAML is returned by [FromYAML] when the input cannot be
	// parsed.
	ErrInvalidYAML = errors.New("arr: invalid YAML")

	// ErrNotObject is returned when decoding into a [Map] from a document
	// whose root is not an object/mapping.
	ErrNotObject = errors.New("arr: document root is not an object")
)
