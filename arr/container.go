package arr

import (
	"iter"
	"reflect"
	"strconv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Container shapes
//
// A container is one of:
//
//   - a list:             []any
//   - an associative map: *Map or map[string]any
//   - a scalar:           anything else
//
// Lists and maps are "accessible" (PHP's is_array). Whether a value is a list
// is computed from its keys, never stored: a map whose keys are exactly
// "0".."n-1" in iteration order is a list too.
// ─────────────────────────────────────────────────────────────────────────────

// IsAccessible reports whether v can be addressed by key: a *Map, a
// map[string]any or a []any.
func IsAccessible(v any) bool {
	switch v.(type) {
	case *Map, map[string]any, []any:
		return true
	}
	return false
}

// IsList reports whether v is accessible and its keys form the contiguous
// sequence 0..n-1. An empty map is a list.
func IsList(v any) bool {
	switch val := v.(type) {
	case []any:
		return true
	case *Map:
		for i, k := range val.keys {
			if k != strconv.Itoa(i) {
				return false
			}
		}
		return true
	case map[string]any:
		for i := range len(val) {
			if _, ok := val[strconv.Itoa(i)]; !ok {
				return false
			}
		}
		return true
	}
	return false
}

// IsAssoc reports whether v is accessible but not a list.
func IsAssoc(v any) bool {
	return IsAccessible(v) && !IsList(v)
}

// Len returns the number of entries of an accessible value, or 0.
func Len(v any) int {
	switch val := v.(type) {
	case *Map:
		return val.Len()
	case map[string]any:
		return len(val)
	case []any:
		return len(val)
	}
	return 0
}

// Entries iterates the entries of an accessible value in natural order:
// insertion order for *Map, index order for []any and ascending key order
// for map[string]any (index order when its keys are "0".."n-1"). Scalars
// yield nothing.
func Entries(v any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		switch val := v.(type) {
		case *Map:
			for k, item := range val.All() {
				if !yield(k, item) {
					return
				}
			}
		case []any:
			for i, item := range val {
				if !yield(strconv.Itoa(i), item) {
					return
				}
			}
		case map[string]any:
			for _, k := range sortedKeys(val) {
				if !yield(k, val[k]) {
					return
				}
			}
		}
	}
}

// lookup reads key from an accessible value.
func lookup(v any, key string) (any, bool) {
	switch val := v.(type) {
	case *Map:
		return val.Get(key)
	case map[string]any:
		item, ok := val[key]
		return item, ok
	case []any:
		i, ok := listIndex(key, len(val))
		if !ok {
			return nil, false
		}
		return val[i], true
	}
	return nil, false
}

// withKey returns a copy of the accessible value v with key set to value.
// v itself is never modified.
func withKey(v any, key string, value any) any {
	switch val := v.(type) {
	case *Map:
		return val.Clone().Set(key, value)
	case map[string]any:
		out := make(map[string]any, len(val)+1)
		for k, item := range val {
			out[k] = item
		}
		out[key] = value
		return out
	case []any:
		if i, ok := listIndex(key, len(val)); ok {
			out := make([]any, len(val))
			copy(out, val)
			out[i] = value
			return out
		}
		if key == strconv.Itoa(len(val)) {
			out := make([]any, len(val), len(val)+1)
			copy(out, val)
			return append(out, value)
		}
		return listToMap(val).Set(key, value)
	}
	return NewMap().Set(key, value)
}

// withoutKey returns a copy of the accessible value v with key removed.
func withoutKey(v any, key string) any {
	switch val := v.(type) {
	case *Map:
		out := val.Clone()
		out.Delete(key)
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if k != key {
				out[k] = item
			}
		}
		return out
	case []any:
		i, ok := listIndex(key, len(val))
		if !ok {
			return val
		}
		if i == len(val)-1 {
			out := make([]any, i)
			copy(out, val[:i])
			return out
		}
		out := listToMap(val)
		out.Delete(key)
		return out
	}
	return v
}

// listIndex parses key as a canonical decimal index into a list of size n.
// "01" and "-1" are not indexes.
func listIndex(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

func listToMap(items []any) *Map {
	out := &Map{keys: make([]string, len(items)), values: make(map[string]any, len(items)+1)}
	for i, item := range items {
		k := strconv.Itoa(i)
		out.keys[i] = k
		out.values[k] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying & comparison
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a deep copy of every container level of v. Scalars are
// shared.
func Clone(v any) any {
	switch val := v.(type) {
	case *Map:
		out := &Map{keys: make([]string, len(val.keys)), values: make(map[string]any, len(val.keys))}
		copy(out.keys, val.keys)
		for k, item := range val.values {
			out.values[k] = Clone(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Clone(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Clone(item)
		}
		return out
	}
	return v
}

// ToNative deep-converts v to plain map[string]any and []any values, the
// shapes produced by encoding/json. Key order is lost.
func ToNative(v any) any {
	switch val := v.(type) {
	case *Map:
		out := make(map[string]any, val.Len())
		for k, item := range val.All() {
			out[k] = ToNative(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = ToNative(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ToNative(item)
		}
		return out
	}
	return v
}

// normalize deep-converts map[string]any levels to *Map (sorted keys).
func normalize(v any) any {
	switch val := v.(type) {
	case *Map:
		out := NewMap()
		for k, item := range val.All() {
			out.Set(k, normalize(item))
		}
		return out
	case map[string]any:
		out := NewMap()
		for _, k := range sortedKeys(val) {
			out.Set(k, normalize(val[k]))
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	}
	return v
}

// Normalize deep-converts every map[string]any level of v into a *Map with
// ascending key order. Other values are copied as-is.
func Normalize(v any) any { return normalize(v) }

// Equal reports whether a and b hold the same data. Maps compare by key set
// regardless of order or concrete map type, lists by position, numbers
// numerically across Go numeric types.
func Equal(a, b any) bool {
	if IsAccessible(a) || IsAccessible(b) {
		_, aList := a.([]any)
		_, bList := b.([]any)
		if aList != bList || !IsAccessible(a) || !IsAccessible(b) || Len(a) != Len(b) {
			return false
		}
		for k, av := range Entries(a) {
			bv, ok := lookup(b, k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	if an, bn := numberOf(a), numberOf(b); an.kind != notNumber && bn.kind != notNumber {
		return numbersEqual(an, bn)
	}
	return reflect.DeepEqual(a, b)
}

func kindOf(v any) string {
	switch {
	case v == nil:
		return "null"
	case IsList(v):
		return "list"
	case IsAccessible(v):
		return "map"
	}
	return reflect.TypeOf(v).String()
}
