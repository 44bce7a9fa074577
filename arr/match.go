package arr

import (
	"regexp"
	"strings"
	"sync"
)

// maxCachedPatterns bounds the compiled pattern cache. The cache is dropped
// wholesale when full.
const maxCachedPatterns = 512

var patternCache struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

// PathMatches reports whether the concrete path matches pattern.
//
// Identical strings always match. Otherwise every "*" in pattern matches one
// or more characters other than "." (one segment, never an empty one) and
// every other character matches itself. The match is anchored at both ends.
//
//	PathMatches("items.*.id", "items.10.id")       // true
//	PathMatches("items.*.id", "items.10.id.extra") // false
//	PathMatches("a.*", "a.b.c")                    // false
func PathMatches(pattern, path string) bool {
	if pattern == path {
		return true
	}
	if !HasWildcard(pattern) {
		return false
	}
	return compilePattern(pattern).MatchString(path)
}

func compilePattern(pattern string) *regexp.Regexp {
	patternCache.mu.RLock()
	re, ok := patternCache.compiled[pattern]
	patternCache.mu.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(patternToRegex(pattern))

	patternCache.mu.Lock()
	defer patternCache.mu.Unlock()
	if patternCache.compiled == nil || len(patternCache.compiled) >= maxCachedPatterns {
		patternCache.compiled = make(map[string]*regexp.Regexp)
	}
	patternCache.compiled[pattern] = re
	return re
}

// patternToRegex quotes every literal run and turns "*" into "[^.]+".
func patternToRegex(pattern string) string {
	parts := strings.Split(pattern, Wildcard)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return "^" + strings.Join(parts, `[^.]+`) + "$"
}
