package handles

// Shared is a reference-counted shared-ownership handle. Any number of Shared
// instances may alias the same ownership group (target plus count cell); the
// last one to release disposes the target.
//
// The zero value is an empty handle.
type Shared[T any] struct {
	target T
	refs   *int
}

// NewShared wraps target as the sole owner of a fresh ownership group with a
// reference count of one. A nil target yields an empty handle.
func NewShared[T any](target T) Shared[T] {
	if isNil(target) {
		return Shared[T]{}
	}
	refs := 1
	return Shared[T]{target: target, refs: &refs}
}

// newAlias joins an existing ownership group, incrementing its count.
func newAlias[T any](target T, refs *int) Shared[T] {
	if refs != nil {
		*refs++
	}
	return Shared[T]{target: target, refs: refs}
}

// Clone returns a new handle aliasing the same ownership group, incrementing
// the reference count.
func (h Shared[T]) Clone() Shared[T] {
	return newAlias(h.target, h.refs)
}

// Move transfers ownership into the returned handle, leaving h empty. The
// reference count is unchanged.
func (h *Shared[T]) Move() Shared[T] {
	moved := Shared[T]{target: h.target, refs: h.refs}
	h.zero()
	return moved
}

// Assign releases h's current ownership, then makes it an alias of other.
// Assigning a handle to itself is a no-op.
func (h *Shared[T]) Assign(other *Shared[T]) {
	if h == other {
		return
	}
	h.Release()
	h.target = other.target
	h.refs = other.refs
	if h.refs != nil {
		*h.refs++
	}
}

// MoveFrom releases h's current ownership, then takes over other's, leaving
// other empty. Moving a handle onto itself is a no-op.
func (h *Shared[T]) MoveFrom(other *Shared[T]) {
	if h == other {
		return
	}
	h.Release()
	h.target = other.target
	h.refs = other.refs
	other.zero()
}

// Get returns the target without transferring ownership. Callers must check
// IsNull first; the target of an empty handle is the zero value.
func (h Shared[T]) Get() T {
	return h.target
}

// IsNull reports whether the handle owns nothing.
func (h Shared[T]) IsNull() bool {
	return h.refs == nil
}

// Refs returns the number of live owning aliases in the group, or zero for an
// empty handle. Weak observers are not counted.
func (h Shared[T]) Refs() int {
	if h.refs == nil {
		return 0
	}
	return *h.refs
}

// Swap exchanges the targets and groups of two handles. Neither group's count
// changes.
func (h *Shared[T]) Swap(other *Shared[T]) {
	h.target, other.target = other.target, h.target
	h.refs, other.refs = other.refs, h.refs
}

// Reset releases current ownership. If target is non-nil the handle becomes
// the sole owner of a fresh group with a count of one; otherwise it is left
// empty.
func (h *Shared[T]) Reset(target T) {
	h.Release()
	if !isNil(target) {
		refs := 1
		h.target = target
		h.refs = &refs
	}
}

// Release drops this handle's share of ownership. At the count's transition
// from one to zero the target is disposed. The handle's own fields are zeroed
// afterwards regardless of whether the count reached zero.
func (h *Shared[T]) Release() {
	if h.refs != nil {
		*h.refs--
		if *h.refs == 0 {
			dispose(h.target)
		}
	}
	h.zero()
}

// Weak returns a non-owning observer of h's ownership group.
func (h Shared[T]) Weak() Weak[T] {
	return Weak[T]{target: h.target, refs: h.refs}
}

func (h *Shared[T]) zero() {
	var zero T
	h.target = zero
	h.refs = nil
}

// CastShared attempts a runtime-checked down- or cross-cast of h's target to
// U. On success it returns a new handle aliasing the same ownership group,
// incrementing the count; on failure it returns an empty handle and the group
// is left untouched.
func CastShared[U any, T any](h *Shared[T]) Shared[U] {
	if h.refs == nil {
		return Shared[U]{}
	}
	u, ok := any(h.target).(U)
	if !ok {
		return Shared[U]{}
	}
	return newAlias(u, h.refs)
}
