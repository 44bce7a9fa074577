package arr

import "strings"

// Wildcard is the path segment that matches every key at its position.
const Wildcard = "*"

// Separator joins path segments.
const Separator = "."

// Segments splits a dot-notation path into its segments.
//
// The path is trimmed first; an empty path has no segments and addresses the
// whole container. There is no escape syntax: a key that itself contains a
// "." cannot be addressed separately from the nested path it spells.
//
//	Segments("user.address.city") // → ["user" "address" "city"]
//	Segments("items.*.id")        // → ["items" "*" "id"]
//	Segments("")                  // → []
func Segments(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

// HasWildcard reports whether path contains a "*" segment or character.
func HasWildcard(path string) bool {
	return strings.Contains(path, Wildcard)
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}
