package ecs

// System is the interface all world systems implement
type System interface {
	Update(world *World, dt float64)
}
