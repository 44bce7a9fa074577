package collections

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hasbyte1/go-laravel-data/arr"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged.
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Collect(rec.GetPath("users"))
//
// Besides callback-based helpers, a Collection can be queried with
// dot-notation paths resolved by arr.DataGet against each item, whatever
// its shape (containers, structs, getters):
//
//	active := collections.Collect(users).
//	    Where("status", "=", "active").
//	    SortByPath("profile.age").
//	    PluckPath("profile.name")
//
// Laravel equivalents: where, whereIn, whereNotIn, whereNull, pluck,
// sortBy, keyBy and groupBy with a string key.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// Collect wraps the values of a container (see package arr) in a
// Collection[any], in the container's iteration order. A scalar yields an
// empty collection.
func Collect(target any) *Collection[any] {
	out := make([]any, 0, arr.Len(target))
	for _, v := range arr.Entries(target) {
		out = append(out, v)
	}
	return &Collection[any]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// String returns a JSON representation of the collection.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side-effects and returns c for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// Dump logs the JSON form of the collection at info level through
// [DefaultLogger] and returns c for chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	DefaultLogger().Info("collection", "json", c.String())
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	for _, item := range c.items {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	return zero, false
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	for i := len(c.items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](c.items[i]) {
			return c.items[i], true
		}
	}
	return zero, false
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := c.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return &Collection[T]{items: out}
}

// Reject returns a new collection with items for which fn returns true removed.
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Map returns a new Collection[any] with each item transformed by fn.
// For a typed result use the package-level [Map].
func (c *Collection[T]) Map(fn func(T, int) any) *Collection[any] {
	return Map(c, fn)
}

// Sort returns a new collection sorted by less. The sort is stable.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Collection[T]{items: out}
}

// SortBy sorts ascending by the float64 value extracted by fn.
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return c.Sort(func(a, b T) bool { return fn(a) < fn(b) })
}

// SortByDesc sorts descending by the float64 value extracted by fn.
func (c *Collection[T]) SortByDesc(fn func(T) float64) *Collection[T] {
	return c.Sort(func(a, b T) bool { return fn(a) > fn(b) })
}

// Take returns at most n items from the start.
// A negative n returns items from the end (Take(-3) is the last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return From(c.items[max(total+n, 0):])
	}
	return From(c.items[:min(n, total)])
}

// Chunk splits the collection into consecutive groups of size. The last
// group may be shorter. Returns no groups when size <= 0.
func (c *Collection[T]) Chunk(size int) [][]T {
	if size <= 0 || len(c.items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(c.items)+size-1)/size)
	for i := 0; i < len(c.items); i += size {
		chunk := make([]T, min(i+size, len(c.items))-i)
		copy(chunk, c.items[i:])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// ─────────────────────────────────────────────────────────────────────────────
// Path queries
// ─────────────────────────────────────────────────────────────────────────────

// PluckPath returns the value at path for every item.
//
//	collections.Collect(users).PluckPath("address.city")
func (c *Collection[T]) PluckPath(path string) *Collection[any] {
	return Map(c, func(item T, _ int) any { return arr.DataGet(item, path) })
}

// Where keeps the items whose value at path satisfies op against value.
//
// Operators: "=" and "==" (loose equality), "!=" and "<>", "===" and "!=="
// (same Go type and equal), "<", ">", "<=" and ">=" (ordered with
// arr.Compare). Any other operator is treated as "=".
//
// Loose equality compares numbers numerically across Go types and otherwise
// compares the string forms of scalars, so 1 == "1" holds.
//
//	c.Where("age", ">=", 18)
func (c *Collection[T]) Where(path, op string, value any) *Collection[T] {
	return c.Filter(func(item T, _ int) bool {
		return compareOp(arr.DataGet(item, path), op, value)
	})
}

// WhereIn keeps the items whose value at path loosely equals one of values.
func (c *Collection[T]) WhereIn(path string, values ...any) *Collection[T] {
	return c.Filter(func(item T, _ int) bool {
		return containsLoose(values, arr.DataGet(item, path))
	})
}

// WhereNotIn keeps the items whose value at path equals none of values.
func (c *Collection[T]) WhereNotIn(path string, values ...any) *Collection[T] {
	return c.Filter(func(item T, _ int) bool {
		return !containsLoose(values, arr.DataGet(item, path))
	})
}

// WhereNull keeps the items whose value at path is nil or missing.
func (c *Collection[T]) WhereNull(path string) *Collection[T] {
	return c.Filter(func(item T, _ int) bool { return arr.DataGet(item, path) == nil })
}

// WhereNotNull keeps the items with a non-nil value at path.
func (c *Collection[T]) WhereNotNull(path string) *Collection[T] {
	return c.Filter(func(item T, _ int) bool { return arr.DataGet(item, path) != nil })
}

// SortByPath sorts ascending by the value at path (see arr.Compare).
// Missing values sort first. The sort is stable.
func (c *Collection[T]) SortByPath(path string) *Collection[T] {
	return c.Sort(func(a, b T) bool {
		return arr.Compare(arr.DataGet(a, path), arr.DataGet(b, path)) < 0
	})
}

// SortByPathDesc sorts descending by the value at path.
func (c *Collection[T]) SortByPathDesc(path string) *Collection[T] {
	return c.Sort(func(a, b T) bool {
		return arr.Compare(arr.DataGet(a, path), arr.DataGet(b, path)) > 0
	})
}

// KeyByPath returns an *arr.Map of items keyed by the string form of their
// value at path (arr.KeyString), in first-seen key order. Later items win.
func (c *Collection[T]) KeyByPath(path string) *arr.Map {
	out := arr.NewMap()
	for _, item := range c.items {
		out.Set(arr.KeyString(arr.DataGet(item, path)), item)
	}
	return out
}

// GroupByPath returns an *arr.Map of *Collection[T] grouped by the string
// form of each item's value at path, in first-seen key order.
func (c *Collection[T]) GroupByPath(path string) *arr.Map {
	out := arr.NewMap()
	for _, item := range c.items {
		key := arr.KeyString(arr.DataGet(item, path))
		group, ok := out.Get(key)
		if !ok {
			group = Empty[T]()
			out.Set(key, group)
		}
		g := group.(*Collection[T])
		g.items = append(g.items, item)
	}
	return out
}

// SumPath returns the sum of the numeric values at path. Non-numeric and
// missing values count as zero.
func (c *Collection[T]) SumPath(path string) float64 {
	var sum float64
	for _, item := range c.items {
		if f, ok := toNumber(arr.DataGet(item, path)); ok {
			sum += f
		}
	}
	return sum
}

// AvgPath returns the mean of the values at path, or [ErrEmptyCollection].
func (c *Collection[T]) AvgPath(path string) (float64, error) {
	if len(c.items) == 0 {
		return 0, ErrEmptyCollection
	}
	return c.SumPath(path) / float64(len(c.items)), nil
}

func compareOp(actual any, op string, value any) bool {
	switch strings.TrimSpace(op) {
	case "!=", "<>":
		return !looseEqual(actual, value)
	case "===":
		return strictEqual(actual, value)
	case "!==":
		return !strictEqual(actual, value)
	case "<":
		return actual != nil && arr.Compare(actual, value) < 0
	case ">":
		return actual != nil && arr.Compare(actual, value) > 0
	case "<=":
		return actual != nil && arr.Compare(actual, value) <= 0
	case ">=":
		return actual != nil && arr.Compare(actual, value) >= 0
	}
	return looseEqual(actual, value)
}

func looseEqual(a, b any) bool {
	if arr.Equal(a, b) {
		return true
	}
	if a == nil || b == nil || arr.IsAccessible(a) || arr.IsAccessible(b) {
		return false
	}
	return arr.KeyString(a) == arr.KeyString(b)
}

func strictEqual(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b) && arr.Equal(a, b)
}

func containsLoose(values []any, v any) bool {
	for _, candidate := range values {
		if looseEqual(v, candidate) {
			return true
		}
	}
	return false
}

func toNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}
