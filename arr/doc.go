// Package arr provides stateless, framework-agnostic helpers for addressing
// nested data with dot-notation paths, inspired by Laravel's Arr facade and
// data_get/data_set helpers.
//
// # Containers
//
// Every function operates on "containers": a []any list, an associative map
// (the insertion-ordered [Map] or a plain map[string]any) or a scalar. Maps
// created by this package are always *Map so results iterate in a stable,
// meaningful order:
//
//	m := arr.MapOf(
//	    "user", arr.MapOf(
//	        "name", "Alice",
//	        "address", arr.MapOf("city", "London"),
//	    ),
//	    "items", []any{
//	        arr.MapOf("id", 10),
//	        arr.MapOf("id", 20),
//	    },
//	)
//
// # Dot-notation access
//
//	arr.Get(m, "user.address.city")           // → "London"
//	m2 := arr.Set(m, "user.address.zip", "EC1")
//	arr.Has(m2, "user.name")                  // → true
//	m3 := arr.Forget(m2, "user.address")
//	flat := arr.Dot(m)                        // → {"user.name": "Alice", ...}
//
// Functions never modify their input; mutations return a new top-level
// container that shares every untouched branch with the original.
//
// # Wildcards
//
// A "*" segment matches every key at its position:
//
//	arr.GetPath(m, "items.*.id")           // → []any{10, 20}
//	arr.Path(m, "items.*.id")              // → [{items.0.id 10 true} {items.1.id 20 true}]
//	arr.PathMatches("items.*.id", "items.3.id") // → true
//
// # Missing data
//
// Lookups never fail: a missing path yields the caller's default, and a
// wildcard query with no matches yields the single absent [PathMatch].
//
// # Portability
//
// All helpers are plain recursive functions over maps and lists and translate
// directly to other languages. See the repository README for Node.js and
// Python equivalents.
package arr
