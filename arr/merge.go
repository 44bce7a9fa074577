package arr

import (
	"slices"
	"sort"
)

// ListStrategy selects how [Merge] combines two lists found at the same key.
type ListStrategy int

const (
	// ListReplace keeps the overlay list and drops the base list.
	ListReplace ListStrategy = iota
	// ListAppend concatenates the overlay list after the base list.
	ListAppend
	// ListUnique concatenates both lists and drops later duplicates
	// (compared with [Equal]).
	ListUnique
)

// String returns the strategy name.
func (s ListStrategy) String() string {
	switch s {
	case ListReplace:
		return "replace"
	case ListAppend:
		return "append"
	case ListUnique:
		return "unique"
	}
	return "unknown"
}

// MergeOptions configures [Merge].
type MergeOptions struct {
	// Lists decides what happens when both sides hold a list at the same
	// key. Defaults to ListReplace.
	Lists ListStrategy
}

// DefaultMergeOptions returns the options used by [Merge] when none are
// given: lists are replaced.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{Lists: ListReplace}
}

// Merge returns base with overlay merged into it. Neither input is modified.
//
// Two associative maps are merged key by key, recursively; base keys keep
// their position and new overlay keys are appended. Two non-empty lists are
// combined according to opts.Lists. An empty container on either side yields
// the other one. When either side is a scalar the overlay value wins.
//
//	Merge(arr.MapOf("a", 1, "n", arr.MapOf("x", 1)),
//	      arr.MapOf("b", 2, "n", arr.MapOf("y", 2)))
//	// → {"a": 1, "n": {"x": 1, "y": 2}, "b": 2}
func Merge(base, overlay any, opts ...MergeOptions) any {
	o := DefaultMergeOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return mergeValues(base, overlay, o)
}

func mergeValues(base, overlay any, o MergeOptions) any {
	switch {
	case !IsAccessible(base) || !IsAccessible(overlay):
		return overlay
	case Len(overlay) == 0:
		return base
	case Len(base) == 0:
		return overlay
	case IsList(base) && IsList(overlay):
		return mergeLists(base, overlay, o.Lists)
	}
	out := NewMap()
	for k, v := range Entries(base) {
		out.Set(k, v)
	}
	for k, v := range Entries(overlay) {
		if existing, ok := out.Get(k); ok {
			out.Set(k, mergeValues(existing, v, o))
			continue
		}
		out.Set(k, v)
	}
	return out
}

func mergeLists(base, overlay any, strategy ListStrategy) any {
	if strategy == ListReplace {
		return overlay
	}
	out := make([]any, 0, Len(base)+Len(overlay))
	for _, list := range []any{base, overlay} {
		for _, v := range Entries(list) {
			if strategy == ListUnique && slices.ContainsFunc(out, func(seen any) bool { return Equal(seen, v) }) {
				continue
			}
			out = append(out, v)
		}
	}
	return out
}

// SortOptions configures [SortRecursive].
type SortOptions struct {
	// Descending reverses both key and value order.
	Descending bool
	// SortLists sorts list elements by value. When false, lists keep their
	// order and only their nested maps are sorted.
	SortLists bool
}

// DefaultSortOptions returns ascending order with list values sorted.
func DefaultSortOptions() SortOptions {
	return SortOptions{SortLists: true}
}

// SortRecursive returns a copy of target with every associative map sorted
// by key and, when opts.SortLists is set, every list sorted by value
// ([Compare]).
func SortRecursive(target any, opts ...SortOptions) any {
	o := DefaultSortOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return sortValue(target, o)
}

func sortValue(v any, o SortOptions) any {
	if !IsAccessible(v) {
		return v
	}
	if Len(v) == 0 {
		return Clone(v)
	}
	if IsList(v) {
		out := make([]any, 0, Len(v))
		for _, item := range Entries(v) {
			out = append(out, sortValue(item, o))
		}
		if o.SortLists {
			sort.SliceStable(out, func(i, j int) bool {
				c := Compare(out[i], out[j])
				if o.Descending {
					return c > 0
				}
				return c < 0
			})
		}
		return out
	}
	keys := make([]string, 0, Len(v))
	for k := range Entries(v) {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if o.Descending {
			return keys[i] > keys[j]
		}
		return keys[i] < keys[j]
	})
	out := NewMap()
	for _, k := range keys {
		item, _ := lookup(v, k)
		out.Set(k, sortValue(item, o))
	}
	return out
}
