// Package collections wraps the path engine of package arr in two fluent
// types, inspired by Laravel's Illuminate/Collections.
//
// # Record
//
// [Record] owns one container value (a map, a list or a scalar) and exposes
// top-level key operations, dot-notation path operations and deep merging:
//
//	rec := collections.NewRecord(map[string]any{
//	    "db": map[string]any{"host": "localhost"},
//	})
//	rec.SetPath("db.port", 5432).
//	    MergeWith(overrides, arr.MergeOptions{Lists: arr.ListUnique})
//	rec.GetPath("db.port")     // → 5432
//	rec.Extract("owner.name") // falls back to struct fields and getters
//
// Records decode from JSON and YAML with key order preserved
// ([RecordFromJSON], [RecordFromYAML]) and report diagnostics through an
// optional [Logger].
//
// # Collection
//
// [Collection][T] is a generic list wrapper. Its transformation methods
// return a *new* Collection, and its path queries (Where, PluckPath,
// SortByPath, KeyByPath, GroupByPath) resolve a dot-notation path against
// each item with arr.DataGet:
//
//	adults := collections.Collect(rec.GetPath("users")).
//	    Where("age", ">=", 18).
//	    SortByPath("name")
//
// Operations that change the element type are package-level functions:
// [Map], [Reduce], [GroupBy], [KeyBy].
//
// # Macros
//
// Named functions registered with [RegisterMacro] can be called on both
// types through [Record.Macro] and [Collection.Macro].
//
// # Portability
//
// A Record is a PHP array / JavaScript object with helper methods; a
// Collection maps to Array.prototype chains in JavaScript or list
// comprehensions in Python.
package collections
