package ecs

import (
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-seeker/handles"
)

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Entity is the capability set every game object implements.
type Entity interface {
	ID() EntityID
	Active() bool
	SetActive(active bool)
	Init()
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Destroy()
	// Components exposes the owned component handles so GetComponent can run
	// its typed lookup. Callers must not release the slice's elements.
	Components() []handles.Shared[Component]
}

// BaseEntity supplies identity, the activity flag and component ownership.
// Concrete entities embed it and implement the lifecycle methods themselves.
type BaseEntity struct {
	id         EntityID
	active     bool
	components []handles.Shared[Component]
}

// NewBaseEntity returns an active entity with a fresh ID and no components.
func NewBaseEntity() BaseEntity {
	return BaseEntity{id: NewEntityID(), active: true}
}

// ID returns the entity's unique identifier.
func (e *BaseEntity) ID() EntityID {
	return e.id
}

// Active reports whether the entity takes part in update and draw passes.
func (e *BaseEntity) Active() bool {
	return e.active
}

// SetActive toggles the entity's participation in update and draw passes.
func (e *BaseEntity) SetActive(active bool) {
	e.active = active
}

// AddComponent attaches c to the entity, which becomes its owner. Components
// are kept in attachment order; nothing prevents attaching two components of
// the same kind.
func (e *BaseEntity) AddComponent(c Component) {
	e.components = append(e.components, handles.NewShared(c))
}

// Components returns the owned component handles in attachment order.
func (e *BaseEntity) Components() []handles.Shared[Component] {
	return e.components
}

// InitComponents runs Init on every owned component in attachment order.
func (e *BaseEntity) InitComponents() {
	for i := range e.components {
		e.components[i].Get().Init()
	}
}

// UpdateComponents runs Update on every owned component in attachment order.
func (e *BaseEntity) UpdateComponents(dt float64) {
	for i := range e.components {
		e.components[i].Get().Update(dt)
	}
}

// DrawComponents runs Draw on every owned component in attachment order.
func (e *BaseEntity) DrawComponents(screen *ebiten.Image) {
	for i := range e.components {
		e.components[i].Get().Draw(screen)
	}
}

// DestroyComponents destroys every owned component and releases the owning
// handles; the entity and its components die together.
func (e *BaseEntity) DestroyComponents() {
	for i := range e.components {
		if c := e.components[i].Get(); c != nil {
			c.Destroy()
		}
		e.components[i].Release()
	}
	e.components = nil
}

// GetComponent returns a new alias to the first attached component whose
// runtime type is T, in attachment order, or an empty handle if none match.
// The caller releases the returned handle when done with it.
func GetComponent[T Component](e Entity) handles.Shared[T] {
	comps := e.Components()
	for i := range comps {
		if h := handles.CastShared[T](&comps[i]); !h.IsNull() {
			return h
		}
	}
	return handles.Shared[T]{}
}
