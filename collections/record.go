package collections

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-laravel-data/arr"
)

// Record wraps a single container value (see package arr) and exposes
// top-level key operations, dot-notation path operations, merging and
// extraction on it.
//
// Every path operation delegates to arr and replaces the owned container
// with the result, so values previously returned by [Record.GetPath] or
// [Record.All] are never changed behind the caller's back.
//
//	rec := collections.NewRecord(map[string]any{
//	    "user": map[string]any{"name": "Alice"},
//	})
//	rec.SetPath("user.address.city", "London").
//	    Forget("user.password")
//	rec.GetPath("user.address.city") // → "London"
//
// Mutating methods return the receiver for chaining. A Record is not safe
// for concurrent mutation; derived views such as [Record.Only] are new
// Records.
//
// Laravel equivalent: an Arr-backed Collection / Fluent instance.
type Record struct {
	items  any
	logger Logger
}

// RecordOption configures a Record at construction time.
type RecordOption func(*Record)

// WithLogger sets the Logger used for diagnostics instead of
// [DefaultLogger]. A nil logger is ignored.
func WithLogger(l Logger) RecordOption {
	return func(r *Record) {
		if l != nil {
			r.logger = l
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewRecord creates a Record owning a copy of items.
//
// nil becomes an empty map. map[string]any levels are converted to *arr.Map
// with ascending keys. Another *Record contributes a copy of its container.
// Scalars are stored as-is.
func NewRecord(items any, opts ...RecordOption) *Record {
	r := &Record{}
	for _, opt := range opts {
		opt(r)
	}
	switch v := items.(type) {
	case nil:
		r.items = arr.NewMap()
	case *Record:
		r.items = arr.Clone(v.items)
	default:
		r.items = arr.Normalize(v)
	}
	return r
}

// RecordFromJSON decodes data into a new Record, keeping document key order.
func RecordFromJSON(data []byte, opts ...RecordOption) (*Record, error) {
	v, err := arr.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("collections: record from JSON: %w", err)
	}
	return newOwned(v, opts), nil
}

// RecordFromYAML decodes data into a new Record, keeping document key order.
func RecordFromYAML(data []byte, opts ...RecordOption) (*Record, error) {
	v, err := arr.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("collections: record from YAML: %w", err)
	}
	return newOwned(v, opts), nil
}

// UndotRecord expands a flat dot-notation map into a new Record.
//
//	UndotRecord(map[string]any{"db.host": "localhost"})
//	// → {"db": {"host": "localhost"}}
func UndotRecord(flat any, opts ...RecordOption) *Record {
	return newOwned(arr.Undot(flat), opts)
}

// newOwned wraps a container that nobody else references.
func newOwned(items any, opts []RecordOption) *Record {
	r := &Record{items: items}
	for _, opt := range opts {
		opt(r)
	}
	if r.items == nil {
		r.items = arr.NewMap()
	}
	return r
}

func (r *Record) log() Logger {
	if r.logger == nil {
		return DefaultLogger()
	}
	return r.logger
}

func (r *Record) derive(items any) *Record {
	return &Record{items: items, logger: r.logger}
}

// ─────────────────────────────────────────────────────────────────────────────
// Top-level keys
// ─────────────────────────────────────────────────────────────────────────────

// Add sets key to value only if key is not present yet.
func (r *Record) Add(key string, value any) *Record {
	if _, ok := arr.Lookup(r.items, key); !ok {
		r.items = arr.Put(r.items, key, value)
	}
	return r
}

// Put sets key to value, replacing any existing value. The key is literal:
// "a.b" creates a key named "a.b", not a nested path.
func (r *Record) Put(key string, value any) *Record {
	r.items = arr.Put(r.items, key, value)
	return r
}

// Has reports whether every key is present at the top level. Returns false
// when no keys are given.
func (r *Record) Has(keys ...string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if _, ok := arr.Lookup(r.items, k); !ok {
			return false
		}
	}
	return true
}

// Get returns the top-level value stored under key, or def[0] (nil).
func (r *Record) Get(key string, def ...any) any {
	if v, ok := arr.Lookup(r.items, key); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// GetOrFail returns the top-level value stored under key, or an error
// wrapping [ErrMissingKey].
func (r *Record) GetOrFail(key string) (any, error) {
	v, ok := arr.Lookup(r.items, key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	return v, nil
}

// Remove deletes the given top-level keys. Missing keys are ignored.
func (r *Record) Remove(keys ...string) *Record {
	r.items = arr.Remove(r.items, keys...)
	return r
}

// Keys returns the top-level keys in iteration order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, arr.Len(r.items))
	for k := range arr.Entries(r.items) {
		keys = append(keys, k)
	}
	return keys
}

// Count returns the number of top-level entries.
func (r *Record) Count() int { return arr.Len(r.items) }

// IsEmpty reports whether the record has no top-level entries.
func (r *Record) IsEmpty() bool { return r.Count() == 0 }

// TryGet implements arr.FieldAccessible, so nested Records are traversed by
// arr.DataGet.
func (r *Record) TryGet(key string) (any, bool) { return arr.Lookup(r.items, key) }

// ─────────────────────────────────────────────────────────────────────────────
// Paths
// ─────────────────────────────────────────────────────────────────────────────

// GetPath reads a dot-notation path; "*" segments collect every match.
// See arr.GetPath.
func (r *Record) GetPath(path string, def ...any) any {
	return arr.GetPath(r.items, path, def...)
}

// SetPath writes value at path, creating intermediate maps. An existing
// non-container intermediate is replaced, and the loss is logged at debug
// level. An empty path is a no-op.
func (r *Record) SetPath(path string, value any) *Record {
	segments := arr.Segments(path)
	if len(segments) > 0 && !arr.IsAccessible(r.items) {
		r.log().Debug("set path replaced non-container value", "path", path, "at", "")
	}
	current := r.items
	for i := 0; i+1 < len(segments); i++ {
		next, ok := arr.Lookup(current, segments[i])
		if !ok {
			break
		}
		if !arr.IsAccessible(next) {
			r.log().Debug("set path replaced non-container value",
				"path", path, "at", strings.Join(segments[:i+1], arr.Separator))
			break
		}
		current = next
	}
	r.items = arr.Set(r.items, path, value)
	return r
}

// HasPath reports whether every path exists. See arr.Has.
func (r *Record) HasPath(paths ...string) bool { return arr.Has(r.items, paths...) }

// HasAnyPath reports whether at least one path exists.
func (r *Record) HasAnyPath(paths ...string) bool { return arr.HasAny(r.items, paths...) }

// Forget removes every path. Paths that do not resolve are skipped and
// logged at debug level.
func (r *Record) Forget(paths ...string) *Record {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if !arr.HasWildcard(p) && !arr.Has(r.items, p) {
			r.log().Debug("forget skipped missing path", "path", p)
			continue
		}
		r.items = arr.Forget(r.items, p)
	}
	return r
}

// Paths evaluates a wildcard pattern and returns every concrete match, or
// the single absent match. See arr.Path.
func (r *Record) Paths(pattern string) []arr.PathMatch { return arr.Path(r.items, pattern) }

// Dot flattens the record into a single-level map with dot-notation keys.
func (r *Record) Dot(prepend ...string) *arr.Map { return arr.Dot(r.items, prepend...) }

// Extract reads key with the object/getter fallback of arr.DataGet.
//
//	rec.Extract("owner.first_name") // works when "owner" holds a struct
func (r *Record) Extract(key string, def ...any) any {
	return arr.DataGet(r.items, key, def...)
}

// Pluck extracts valuePath from every top-level item. See arr.Pluck.
func (r *Record) Pluck(valuePath, keyPath string) any {
	return arr.Pluck(r.items, valuePath, keyPath)
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging & derived views
// ─────────────────────────────────────────────────────────────────────────────

// Merge deep-merges other into the record with arr.DefaultMergeOptions.
// other may be a container or another *Record.
func (r *Record) Merge(other any) *Record {
	return r.MergeWith(other, arr.DefaultMergeOptions())
}

// MergeWith deep-merges other into the record with explicit options.
func (r *Record) MergeWith(other any, opts arr.MergeOptions) *Record {
	if rec, ok := other.(*Record); ok {
		other = rec.items
	}
	r.items = arr.Merge(r.items, other, opts)
	return r
}

// Only returns a new Record holding only the given top-level keys.
func (r *Record) Only(keys ...string) *Record { return r.derive(arr.Only(r.items, keys...)) }

// Except returns a new Record without the given top-level keys.
func (r *Record) Except(keys ...string) *Record { return r.derive(arr.Except(r.items, keys...)) }

// SortRecursive returns a new Record with every level sorted.
// See arr.SortRecursive.
func (r *Record) SortRecursive(opts ...arr.SortOptions) *Record {
	return r.derive(arr.SortRecursive(r.items, opts...))
}

// Values returns the top-level values as a Collection.
func (r *Record) Values() *Collection[any] { return Collect(r.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Exposure
// ─────────────────────────────────────────────────────────────────────────────

// All returns a deep copy of the owned container.
func (r *Record) All() any { return arr.Clone(r.items) }

// ToArray returns the container as plain map[string]any / []any values.
func (r *Record) ToArray() any { return arr.ToNative(r.items) }

// ToJSON encodes the record as JSON, keeping key order.
func (r *Record) ToJSON() ([]byte, error) { return arr.ToJSON(r.items) }

// ToYAML encodes the record as YAML, keeping key order.
func (r *Record) ToYAML() ([]byte, error) { return arr.ToYAML(r.items) }

// MarshalJSON implements json.Marshaler.
func (r *Record) MarshalJSON() ([]byte, error) { return r.ToJSON() }

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	v, err := arr.FromJSON(data)
	if err != nil {
		return err
	}
	r.items = v
	return nil
}

var (
	_ json.Marshaler      = (*Record)(nil)
	_ json.Unmarshaler    = (*Record)(nil)
	_ arr.FieldAccessible = (*Record)(nil)
	_ fmt.Stringer        = (*Record)(nil)
)

// String returns the JSON form of the record.
func (r *Record) String() string {
	b, err := r.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", r.items)
	}
	return string(b)
}

// Fingerprint returns the hex BLAKE2b-256 digest of the record's content.
// Map key order does not affect it; list order does.
func (r *Record) Fingerprint() (string, error) {
	canonical := arr.SortRecursive(r.items, arr.SortOptions{})
	b, err := arr.ToJSON(canonical)
	if err != nil {
		return "", fmt.Errorf("collections: fingerprint: %w", err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Dump logs the JSON form of the record at info level and returns r.
func (r *Record) Dump() *Record {
	r.log().Info("record", "json", r.String())
	return r
}

// Macro calls the named registered macro with r. See [RegisterMacro].
func (r *Record) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, r, args...)
}
