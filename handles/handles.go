// Package handles provides explicit ownership primitives: a reference-counted
// shared handle, a move-only exclusive handle, a non-owning weak observer and
// a per-type singleton holder.
//
// Go's garbage collector reclaims memory either way; what the handles add is
// deterministic teardown. A target implementing Disposer is disposed exactly
// once, at the moment its last owner lets go.
//
// The type parameter T is normally a pointer or interface type. Go has no copy
// constructors, so a plain struct copy of a handle is not an alias; ownership
// is created and transferred only through the documented methods.
//
// Handles are not safe for concurrent use. Mutating a handle, or two aliases
// of the same ownership group, from multiple goroutines requires external
// synchronization.
package handles

import "reflect"

// Disposer is implemented by targets that need deterministic teardown when the
// handle layer drops its last owning reference.
type Disposer interface {
	Dispose()
}

// isNil reports whether v is a nil target regardless of its static type.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// dispose runs the target's Dispose hook if it has one.
func dispose(v any) {
	if d, ok := v.(Disposer); ok {
		d.Dispose()
	}
}
