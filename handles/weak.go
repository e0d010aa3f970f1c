package handles

// Weak observes a Shared ownership group without owning it. It never affects
// the reference count, and Lock is the only way to reach the observed target.
//
// The zero value is an empty observer.
type Weak[T any] struct {
	target T
	refs   *int
}

// NewWeak observes shared's ownership group without incrementing its count.
func NewWeak[T any](shared *Shared[T]) Weak[T] {
	return Weak[T]{target: shared.target, refs: shared.refs}
}

// Lock attempts to upgrade to an owning handle. It returns a non-empty Shared
// only while the group still has at least one live owner, incrementing the
// count; once the last owner has released, Lock always returns an empty
// handle.
func (w Weak[T]) Lock() Shared[T] {
	if w.refs != nil && *w.refs > 0 {
		return newAlias(w.target, w.refs)
	}
	return Shared[T]{}
}
