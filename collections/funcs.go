package collections

// Package-level generic helpers for operations that change the element or
// key type. Methods cannot introduce type parameters, so these are plain
// functions that compose with method chains:
//
//	names := collections.Map(
//	    collections.Collect(users).Where("active", "=", true),
//	    func(u any, _ int) string { return arr.KeyString(arr.DataGet(u, "name")) },
//	)

// Map applies fn to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return &Collection[U]{items: out}
}

// Reduce folds Collection[T] into a single value of type U.
//
//	total := collections.Reduce(orders,
//	    func(acc float64, o any, _ int) float64 { return acc + o.(Order).Total }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// GroupBy groups items by the comparable key K extracted by fn.
// For dot-notation keys use [Collection.GroupByPath].
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	groups := make(map[K]*Collection[T])
	for _, item := range c.items {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	}
	return groups
}

// KeyBy builds a map[K]T keyed by fn. When items share a key the last one
// wins. For dot-notation keys use [Collection.KeyByPath].
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(c.items))
	for _, item := range c.items {
		out[fn(item)] = item
	}
	return out
}
