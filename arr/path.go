package arr

import "fmt"

// PathMatch is one result of a wildcard path query.
//
// When Present is false the query matched nothing: Value is nil and Path is
// the original pattern, not a concrete path. A match whose stored value is
// nil has Present set to true.
type PathMatch struct {
	Path    string
	Value   any
	Present bool
}

// String returns "path=value" or "path (absent)".
func (m PathMatch) String() string {
	if !m.Present {
		return m.Path + " (absent)"
	}
	return fmt.Sprintf("%s=%v", m.Path, m.Value)
}

// Path evaluates pattern against target and returns every concrete match in
// depth-first order.
//
// A "*" segment expands to every key of the current container, in its
// natural iteration order. A literal segment that is absent prunes its
// branch, as does a scalar reached while segments remain. When no branch
// produces a match, the result is the single absent sentinel
// {Path: pattern, Value: nil, Present: false}.
//
//	Path(m, "items.*.id")
//	// → [{items.0.id 10 true} {items.1.id 20 true}]
func Path(target any, pattern string) []PathMatch {
	var matches []PathMatch
	walkPath(target, Segments(pattern), "", &matches)
	if len(matches) == 0 {
		return []PathMatch{{Path: pattern}}
	}
	return matches
}

func walkPath(node any, segments []string, prefix string, out *[]PathMatch) {
	if len(segments) == 0 {
		*out = append(*out, PathMatch{Path: prefix, Value: node, Present: true})
		return
	}
	if !IsAccessible(node) {
		return
	}
	seg, rest := segments[0], segments[1:]
	if seg == Wildcard {
		for k, child := range Entries(node) {
			walkPath(child, rest, joinPath(prefix, k), out)
		}
		return
	}
	if child, ok := lookup(node, seg); ok {
		walkPath(child, rest, joinPath(prefix, seg), out)
	}
}

// GetPath is the wildcard-aware form of [Get].
//
// Without "*" it behaves exactly like Get. With "*" it returns a []any of
// the values of every present match, in [Path] order, or def[0] (nil) when
// nothing matched. Matched nil values are kept in the result.
//
//	GetPath(m, "items.*.id") // → []any{10, 20}
func GetPath(target any, pattern string, def ...any) any {
	if !HasWildcard(pattern) {
		return Get(target, pattern, def...)
	}
	values := presentValues(Path(target, pattern))
	if len(values) == 0 {
		return fallback(def)
	}
	return values
}

func presentValues(matches []PathMatch) []any {
	var out []any
	for _, m := range matches {
		if m.Present {
			out = append(out, m.Value)
		}
	}
	return out
}
