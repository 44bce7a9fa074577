package arr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"sort"
	"strconv"
)

// Map is an insertion-ordered associative container with string keys.
//
// It is the associative shape produced by every function in this package
// that has to create a map ([Set] autovivification, [Dot], [Undot],
// [FromJSON], [FromYAML]). Plain map[string]any values are accepted as input
// everywhere and are iterated in ascending key order.
//
// Portability note: this is a PHP array with string keys, a JavaScript Map,
// or a Python dict.
//
// A Map is a plain data structure: it is not safe for concurrent mutation.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// MapFrom copies m into a new Map. Keys are inserted in ascending order.
// Nested values are not converted.
func MapFrom(m map[string]any) *Map {
	out := &Map{keys: make([]string, 0, len(m)), values: make(map[string]any, len(m))}
	for _, k := range sortedKeys(m) {
		out.keys = append(out.keys, k)
		out.values[k] = m[k]
	}
	return out
}

// MapOf builds a Map from alternating key/value arguments.
//
//	arr.MapOf("name", "Alice", "age", 30)
//
// Non-string keys are formatted with %v. A trailing key without a value is
// stored with a nil value.
func MapOf(kv ...any) *Map {
	out := NewMap()
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if s, ok := kv[i].(string); ok {
			key = s
		}
		var val any
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		out.Set(key, val)
	}
	return out
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return []string{}
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value stored under key and whether it exists.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key exists.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
// Returns m for chaining.
func (m *Map) Set(key string, value any) *Map {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Delete removes key. Missing keys are ignored.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a shallow copy of m.
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap()
	}
	out := &Map{keys: make([]string, len(m.keys)), values: make(map[string]any, len(m.values))}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// All returns an iterator over the entries in insertion order.
//
//	for k, v := range m.All() { ... }
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// String returns the JSON form of m.
func (m *Map) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.values)
	}
	return string(b)
}

// MarshalJSON encodes m as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("arr: encode key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into m, keeping document key order.
// Nested objects become *Map values.
func (m *Map) UnmarshalJSON(data []byte) error {
	v, err := FromJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("%w: got %s", ErrNotObject, kindOf(v))
	}
	*m = *decoded
	return nil
}

// sortedKeys returns the keys of m in ascending order. A map whose keys are
// exactly "0".."n-1" yields them in index order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	if IsList(m) {
		for i := range len(m) {
			keys = append(keys, strconv.Itoa(i))
		}
		return keys
	}
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
