package arr

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// These functions read, write and test values in nested containers using
// dot-separated key paths, mirroring Laravel's Arr::get, Arr::set, Arr::has,
// Arr::forget, Arr::dot and Arr::undot.
//
//	m := arr.MapOf(
//	    "user", arr.MapOf(
//	        "name", "Alice",
//	        "address", arr.MapOf("city", "London"),
//	    ),
//	)
//
//	Get(m, "user.address.city")      → "London"
//	m2 := Set(m, "user.age", 30)     // m is unchanged
//	Has(m2, "user.name")             → true
//	m3 := Forget(m2, "user.address")
//
// None of these functions modify their input. Mutations rebuild the spine of
// containers along the path and share every untouched sibling.
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from target using a dot-notation path.
// Returns def[0] (or nil) as soon as a segment cannot be resolved. A stored
// nil is returned as nil; use [Has] to tell it apart from a missing key.
// An empty path returns target itself. "*" is matched literally; use
// [GetPath] for wildcard queries.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(target any, path string, def ...any) any {
	current := target
	for _, seg := range Segments(path) {
		next, ok := lookup(current, seg)
		if !ok {
			return fallback(def)
		}
		current = next
	}
	return current
}

// Has reports whether every path exists in target. Paths containing a "*"
// segment exist when at least one concrete path matches them.
// Returns false when no paths are given or a path is empty.
func Has(target any, paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	for _, path := range paths {
		if !hasPath(target, path) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the paths exists in target.
func HasAny(target any, paths ...string) bool {
	for _, path := range paths {
		if hasPath(target, path) {
			return true
		}
	}
	return false
}

func hasPath(target any, path string) bool {
	segments := Segments(path)
	if len(segments) == 0 {
		return false
	}
	if HasWildcard(path) {
		return len(presentValues(Path(target, path))) > 0
	}
	current := target
	for _, seg := range segments {
		next, ok := lookup(current, seg)
		if !ok {
			return false
		}
		current = next
	}
	return true
}

// Set returns a copy of target with value written at path.
//
// Missing intermediates are created as empty *Map values. An intermediate
// that exists but is not a container is replaced by an empty *Map, so
// Set({"a": 1}, "a.b", 2) yields {"a": {"b": 2}}. An empty path returns
// target unchanged.
//
//	m = Set(m, "user.address.postcode", "EC1")
func Set(target any, path string, value any) any {
	segments := Segments(path)
	if len(segments) == 0 {
		return target
	}
	return setIn(target, segments, value)
}

func setIn(node any, segments []string, value any) any {
	if !IsAccessible(node) {
		node = NewMap()
	}
	key, rest := segments[0], segments[1:]
	if len(rest) == 0 {
		return withKey(node, key, value)
	}
	child, ok := lookup(node, key)
	if !ok || !IsAccessible(child) {
		child = NewMap()
	}
	return withKey(node, key, setIn(child, rest, value))
}

// Forget returns a copy of target with every path removed.
//
// Each path is applied independently. A path whose intermediate segments do
// not resolve to containers is skipped; Forget never creates anything. Empty
// paths are ignored. Removing an element from the middle of a []any turns it
// into a *Map holding the remaining indexes.
func Forget(target any, paths ...string) any {
	for _, path := range paths {
		segments := Segments(path)
		if len(segments) == 0 {
			continue
		}
		if next, changed := forgetIn(target, segments); changed {
			target = next
		}
	}
	return target
}

func forgetIn(node any, segments []string) (any, bool) {
	if !IsAccessible(node) {
		return node, false
	}
	key, rest := segments[0], segments[1:]
	child, ok := lookup(node, key)
	if !ok {
		return node, false
	}
	if len(rest) == 0 {
		return withoutKey(node, key), true
	}
	next, changed := forgetIn(child, rest)
	if !changed {
		return node, false
	}
	return withKey(node, key, next), true
}

// Dot flattens target into a single-level *Map using dot notation for the
// keys. Non-empty associative maps are descended into; lists, empty maps and
// scalars are kept as leaf values. The optional prepend is prefixed to every
// key.
//
//	Dot(arr.MapOf("a", arr.MapOf("b", 1), "c", []any{1, 2}))
//	// → {"a.b": 1, "c": [1, 2]}
func Dot(target any, prepend ...string) *Map {
	prefix := ""
	if len(prepend) > 0 {
		prefix = prepend[0]
	}
	out := NewMap()
	dotFlatten(prefix, target, out)
	return out
}

func dotFlatten(prefix string, node any, out *Map) {
	for k, v := range Entries(node) {
		key := joinPath(prefix, k)
		if IsAssoc(v) {
			dotFlatten(key, v, out)
		} else {
			out.Set(key, v)
		}
	}
}

// Undot expands a flat dot-notation map (*Map or map[string]any) into a
// nested *Map. Keys are applied in order with [Set] semantics.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → {"a": {"b": 1, "c": 2}}
func Undot(flat any) *Map {
	var out any = NewMap()
	for key, val := range Entries(flat) {
		out = Set(out, key, val)
	}
	return out.(*Map)
}

// Lookup reads a single literal key from target. Dots in key are not
// treated as separators.
func Lookup(target any, key string) (any, bool) {
	return lookup(target, key)
}

// Put returns a copy of target with the literal key set to value. A scalar
// target is replaced by a new *Map.
func Put(target any, key string, value any) any {
	return withKey(target, key, value)
}

// Remove returns a copy of target without the given literal keys.
func Remove(target any, keys ...string) any {
	for _, k := range keys {
		if _, ok := lookup(target, k); ok {
			target = withoutKey(target, k)
		}
	}
	return target
}

// Only returns a new *Map containing only the given top-level keys, in the
// order they appear in target.
func Only(target any, keys ...string) *Map {
	keep := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}
	out := NewMap()
	for k, v := range Entries(target) {
		if _, ok := keep[k]; ok {
			out.Set(k, v)
		}
	}
	return out
}

// Except returns a new *Map without the given top-level keys.
func Except(target any, keys ...string) *Map {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := NewMap()
	for k, v := range Entries(target) {
		if _, skip := drop[k]; !skip {
			out.Set(k, v)
		}
	}
	return out
}

func fallback(def []any) any {
	if len(def) > 0 {
		return def[0]
	}
	return nil
}
