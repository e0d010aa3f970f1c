package components

import "ebiten-seeker/ecs"

// Component IDs for the engine's built-in components
const (
	Transform ecs.ComponentID = iota
	Shape
)
