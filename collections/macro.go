package collections

import (
	"fmt"
	"sync"
)

// MacroFunc is the signature of a registered macro.
//
// target is the *Record or *Collection[T] the macro was called on; type
// assert it inside the macro.
type MacroFunc func(target any, args ...any) any

// macros is the package-level, goroutine-safe macro store.
var macros = struct {
	mu    sync.RWMutex
	funcs map[string]MacroFunc
}{funcs: make(map[string]MacroFunc)}

// RegisterMacro adds a named macro, replacing any macro with that name.
// Safe to call from multiple goroutines.
//
//	collections.RegisterMacro("emails", func(target any, _ ...any) any {
//	    return target.(*collections.Record).GetPath("users.*.email")
//	})
//
//	emails, _ := rec.Macro("emails")
func RegisterMacro(name string, fn MacroFunc) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.funcs[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macros.mu.RLock()
	defer macros.mu.RUnlock()
	_, ok := macros.funcs[name]
	return ok
}

// FlushMacros removes all registered macros. Intended for tests.
func FlushMacros() {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	clear(macros.funcs)
}

// CallMacro calls the named macro with target and args, or returns an error
// wrapping [ErrMacroNotFound].
func CallMacro(name string, target any, args ...any) (any, error) {
	macros.mu.RLock()
	fn, ok := macros.funcs[name]
	macros.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(target, args...), nil
}

// Macro calls the named macro with c. See [CallMacro].
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
