// Package entities provides the engine's concrete game objects.
package entities

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-seeker/components"
	"ebiten-seeker/ecs"
	"ebiten-seeker/handles"
)

// Actor is a generic game object: an entity carrying a transform and a shape
// component, keeping the shape in sync with the transform every frame.
type Actor struct {
	ecs.BaseEntity
	name string
}

// NewActor creates an actor with a transform and an empty shape attached, in
// that order.
func NewActor(name string) *Actor {
	a := &Actor{BaseEntity: ecs.NewBaseEntity(), name: name}
	a.AddComponent(components.NewTransformComponent())
	a.AddComponent(components.NewShapeComponent())
	return a
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	return a.name
}

// Init initializes the attached components.
func (a *Actor) Init() {
	a.InitComponents()
}

// Update syncs the shape to the transform, then updates the components.
func (a *Actor) Update(dt float64) {
	transform := ecs.GetComponent[*components.TransformComponent](a)
	shape := ecs.GetComponent[*components.ShapeComponent](a)
	if !transform.IsNull() && !shape.IsNull() {
		shape.Get().SetPosition(transform.Get().Position())
		shape.Get().SetRotation(transform.Get().Rotation().X)
		shape.Get().SetScale(transform.Get().Scale())
	}
	transform.Release()
	shape.Release()

	a.UpdateComponents(dt)
}

// Draw renders every shape component in attachment order.
func (a *Actor) Draw(screen *ebiten.Image) {
	comps := a.Components()
	for i := range comps {
		if shape := handles.CastShared[*components.ShapeComponent](&comps[i]); !shape.IsNull() {
			shape.Get().Draw(screen)
			shape.Release()
		}
	}
}

// Destroy tears down the attached components.
func (a *Actor) Destroy() {
	a.DestroyComponents()
}
