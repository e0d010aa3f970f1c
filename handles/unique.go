package handles

// Unique is an exclusive-ownership handle: at most one Unique owns a given
// target at a time. Ownership moves via Move, MoveFrom, Release or
// ConvertUnique; copying the struct is outside the contract.
//
// The zero value is an empty handle.
type Unique[T any] struct {
	target T
	held   bool
}

// NewUnique adopts target as the sole owner. A nil target yields an empty
// handle.
func NewUnique[T any](target T) Unique[T] {
	if isNil(target) {
		return Unique[T]{}
	}
	return Unique[T]{target: target, held: true}
}

// Get returns the target without transferring ownership.
func (h Unique[T]) Get() T {
	return h.target
}

// IsNull reports whether the handle owns nothing.
func (h Unique[T]) IsNull() bool {
	return !h.held
}

// Release relinquishes ownership and returns the target; the caller becomes
// responsible for its teardown. The handle is empty afterwards.
func (h *Unique[T]) Release() T {
	t := h.target
	h.zero()
	return t
}

// Reset disposes the currently owned target, if any, then adopts target. A
// nil target leaves the handle empty.
func (h *Unique[T]) Reset(target T) {
	if h.held {
		dispose(h.target)
	}
	h.zero()
	if !isNil(target) {
		h.target = target
		h.held = true
	}
}

// Move transfers ownership into the returned handle, leaving h empty.
func (h *Unique[T]) Move() Unique[T] {
	moved := *h
	h.zero()
	return moved
}

// MoveFrom disposes h's current target, then takes ownership from other,
// leaving it empty. Moving a handle onto itself is a no-op.
func (h *Unique[T]) MoveFrom(other *Unique[T]) {
	if h == other {
		return
	}
	if h.held {
		dispose(h.target)
	}
	*h = *other
	other.zero()
}

func (h *Unique[T]) zero() {
	var zero T
	h.target = zero
	h.held = false
}

// ConvertUnique adopts ownership across convertible types via release and
// re-adopt. If the target's runtime type is not a U, the source keeps
// ownership and the result is empty.
func ConvertUnique[U any, T any](h *Unique[T]) Unique[U] {
	if !h.held {
		return Unique[U]{}
	}
	u, ok := any(h.target).(U)
	if !ok {
		return Unique[U]{}
	}
	h.zero()
	return Unique[U]{target: u, held: true}
}
