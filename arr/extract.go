package arr

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldAccessible is implemented by values that expose named fields to
// [DataGet] without being containers.
//
//	type User struct{ first, last string }
//
//	func (u User) TryGet(key string) (any, bool) {
//	    switch key {
//	    case "full_name":
//	        return u.first + " " + u.last, true
//	    }
//	    return nil, false
//	}
type FieldAccessible interface {
	TryGet(key string) (any, bool)
}

// FieldFunc adapts a plain function to [FieldAccessible].
type FieldFunc func(key string) (any, bool)

// TryGet implements FieldAccessible.
func (f FieldFunc) TryGet(key string) (any, bool) { return f(key) }

// Getters exposes accessor functions keyed by accessor name. A segment is
// resolved through [AccessorName], so "first_name" calls Getters["GetFirstName"].
type Getters map[string]func() any

// TryGet implements FieldAccessible.
func (g Getters) TryGet(key string) (any, bool) {
	fn, ok := g[AccessorName(key)]
	if !ok || fn == nil {
		return nil, false
	}
	return fn(), true
}

// Studly converts a snake_case or kebab-case segment to StudlyCase.
//
//	Studly("first_name") // "FirstName"
//	Studly("first-name") // "FirstName"
func Studly(segment string) string {
	words := strings.FieldsFunc(segment, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	// A Caser is stateful, so each call gets its own.
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

// AccessorName returns the getter method name for a path segment.
//
//	AccessorName("foo_bar") // "GetFooBar"
func AccessorName(segment string) string {
	return "Get" + Studly(segment)
}

// Object wraps a struct (or pointer to struct) as a [FieldAccessible].
//
// A segment resolves to, in order: the exported field with that exact name,
// the exported field named [Studly](segment), then a method named
// [AccessorName](segment) that takes no arguments and returns at least one
// value. Returns nil when v is not a struct.
func Object(v any) FieldAccessible {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return objectFields{value: reflect.ValueOf(v), elem: rv}
}

type objectFields struct {
	value reflect.Value // as passed, so pointer-receiver methods are visible
	elem  reflect.Value
}

func (o objectFields) TryGet(key string) (any, bool) {
	for _, name := range []string{key, Studly(key)} {
		if name == "" {
			continue
		}
		sf, ok := o.elem.Type().FieldByName(name)
		if ok && sf.IsExported() {
			field, err := o.elem.FieldByIndexErr(sf.Index)
			if err != nil {
				// promoted through a nil embedded pointer
				return nil, false
			}
			return field.Interface(), true
		}
	}
	m := o.value.MethodByName(AccessorName(key))
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() == 0 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

// Elements wraps a typed map, slice or array (or a pointer to one) as a
// [FieldAccessible], for values such as map[string]string, []string or
// []map[string]any that are not containers themselves. Map keys must have a
// string or integer kind; slice and array segments are canonical indexes.
// Returns nil for other kinds.
func Elements(v any) FieldAccessible {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return elements{value: rv}
	case reflect.Map:
		if _, ok := mapKey(rv.Type().Key(), "0"); ok {
			return elements{value: rv}
		}
	}
	return nil
}

type elements struct {
	value reflect.Value
}

func (e elements) TryGet(key string) (any, bool) {
	if e.value.Kind() == reflect.Map {
		k, ok := mapKey(e.value.Type().Key(), key)
		if !ok {
			return nil, false
		}
		item := e.value.MapIndex(k)
		if !item.IsValid() {
			return nil, false
		}
		return item.Interface(), true
	}
	i, ok := listIndex(key, e.value.Len())
	if !ok {
		return nil, false
	}
	return e.value.Index(i).Interface(), true
}

// mapKey converts a path segment to a map key of type t.
func mapKey(t reflect.Type, key string) (reflect.Value, bool) {
	k := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		k.SetString(key)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		k.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		k.SetUint(n)
	default:
		return reflect.Value{}, false
	}
	return k, true
}

// DataGet reads key from target, falling back from container lookups to
// object fields and getters. It is the extractor behind Pluck, Where and the
// SortBy / KeyBy helpers of the collections package.
//
//  1. An empty key returns target.
//  2. A key containing "*" on a container is evaluated with [GetPath].
//  3. Otherwise each segment is resolved by container lookup, then by
//     [FieldAccessible.TryGet], then through [Elements] for typed maps and
//     slices, then through [Object] for structs. The first
//     segment that cannot be resolved returns def[0] (or nil).
func DataGet(target any, key string, def ...any) any {
	if strings.TrimSpace(key) == "" {
		return target
	}
	if HasWildcard(key) && IsAccessible(target) {
		return GetPath(target, key, def...)
	}
	current := target
	for _, seg := range Segments(key) {
		next, ok := extractSegment(current, seg)
		if !ok {
			return fallback(def)
		}
		current = next
	}
	return current
}

func extractSegment(v any, seg string) (any, bool) {
	if IsAccessible(v) {
		return lookup(v, seg)
	}
	if fa, ok := v.(FieldAccessible); ok {
		return fa.TryGet(seg)
	}
	if els := Elements(v); els != nil {
		return els.TryGet(seg)
	}
	if obj := Object(v); obj != nil {
		return obj.TryGet(seg)
	}
	return nil, false
}

// Pluck extracts the value at valuePath from every item of target.
//
// With an empty keyPath the result is a []any in item order. Otherwise the
// result is a *Map keyed by the string form of each item's keyPath value;
// later items win on duplicate keys.
//
//	Pluck(users, "name", "")   // → []any{"Alice", "Bob"}
//	Pluck(users, "name", "id") // → {"1": "Alice", "2": "Bob"}
func Pluck(target any, valuePath, keyPath string) any {
	if keyPath == "" {
		out := make([]any, 0, Len(target))
		for _, item := range Entries(target) {
			out = append(out, DataGet(item, valuePath))
		}
		return out
	}
	out := NewMap()
	for _, item := range Entries(target) {
		out.Set(KeyString(DataGet(item, keyPath)), DataGet(item, valuePath))
	}
	return out
}
