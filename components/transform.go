package components

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-seeker/ecs"
	"ebiten-seeker/vec"
)

// TransformComponent stores an entity's position, rotation and scale.
type TransformComponent struct {
	position vec.Vec2
	rotation vec.Vec2
	scale    vec.Vec2
}

// NewTransformComponent creates a transform at the origin with unit scale.
func NewTransformComponent() *TransformComponent {
	return &TransformComponent{scale: vec.V(1, 1)}
}

// Kind returns the transform component ID.
func (t *TransformComponent) Kind() ecs.ComponentID { return Transform }

// Init implements the component lifecycle; a transform needs no setup.
func (t *TransformComponent) Init() {}

// Update implements the component lifecycle; a transform does not tick.
func (t *TransformComponent) Update(dt float64) {}

// Draw implements the component lifecycle; a transform draws nothing.
func (t *TransformComponent) Draw(screen *ebiten.Image) {}

// Destroy implements the component lifecycle; a transform holds no resources.
func (t *TransformComponent) Destroy() {}

// SetPosition sets the position.
func (t *TransformComponent) SetPosition(p vec.Vec2) { t.position = p }

// Position returns the position.
func (t *TransformComponent) Position() vec.Vec2 { return t.position }

// SetRotation sets the rotation.
func (t *TransformComponent) SetRotation(r vec.Vec2) { t.rotation = r }

// Rotation returns the rotation.
func (t *TransformComponent) Rotation() vec.Vec2 { return t.rotation }

// SetScale sets the scale.
func (t *TransformComponent) SetScale(s vec.Vec2) { t.scale = s }

// Scale returns the scale.
func (t *TransformComponent) Scale() vec.Vec2 { return t.scale }

// Seek moves the position toward target at speed units per second for dt
// seconds. While the distance to target is within arriveRange the position is
// left unchanged; there is no overshoot correction beyond that threshold.
func (t *TransformComponent) Seek(target vec.Vec2, speed, dt, arriveRange float64) {
	offset := target.Sub(t.position)
	if offset.Length() <= arriveRange {
		return
	}
	t.position = t.position.Add(offset.Normalized().Mul(speed * dt))
}
