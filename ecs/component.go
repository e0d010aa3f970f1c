package ecs

import "github.com/hajimehoshi/ebiten/v2"

// ComponentID is a unique identifier for component kinds. Games declare their
// own IDs with iota blocks.
type ComponentID uint

// Component is the capability set every component implements. A component is
// owned by the entity it is attached to and shares its lifetime.
type Component interface {
	Kind() ComponentID
	Init()
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Destroy()
}
