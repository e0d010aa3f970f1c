package handles

import "reflect"

// Slots holds at most one instance per type. It stands in for ad hoc
// process-wide singletons: the application driver constructs a holder, passes
// it to whoever needs globally reachable services, and closes it on shutdown
// so teardown stays deterministic.
type Slots struct {
	instances map[reflect.Type]any
}

// NewSlots returns an empty holder.
func NewSlots() *Slots {
	return &Slots{instances: make(map[reflect.Type]any)}
}

// Close disposes every occupied slot and empties the holder.
func (s *Slots) Close() {
	for key, v := range s.instances {
		dispose(v)
		delete(s.instances, key)
	}
}

func slotKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SetSlot stores v as the instance for type T. Any previous occupant is
// disposed first. A nil v just clears the slot.
func SetSlot[T any](s *Slots, v T) {
	ClearSlot[T](s)
	if !isNil(v) {
		s.instances[slotKey[T]()] = v
	}
}

// GetSlot returns the instance for type T, or the zero value if the slot is
// empty.
func GetSlot[T any](s *Slots) T {
	if v, ok := s.instances[slotKey[T]()]; ok {
		return v.(T)
	}
	var zero T
	return zero
}

// HasSlot reports whether a slot for type T is occupied.
func HasSlot[T any](s *Slots) bool {
	_, ok := s.instances[slotKey[T]()]
	return ok
}

// ClearSlot disposes and removes the instance for type T, if any.
func ClearSlot[T any](s *Slots) {
	key := slotKey[T]()
	if prev, ok := s.instances[key]; ok {
		dispose(prev)
		delete(s.instances, key)
	}
}
