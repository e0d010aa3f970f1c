package systems

import (
	"ebiten-seeker/components"
	"ebiten-seeker/ecs"
	"ebiten-seeker/vec"
)

// EventWaypointReached is published whenever an entity enters the arrival
// range of its current waypoint.
const EventWaypointReached ecs.EventType = "waypoint_reached"

// WaypointReachedEvent reports which entity reached which waypoint.
type WaypointReachedEvent struct {
	Entity   ecs.EntityID
	Index    int
	Waypoint vec.Vec2
}

// Type returns the event type.
func (WaypointReachedEvent) Type() ecs.EventType {
	return EventWaypointReached
}

// NavigationSystem steers every entity that has a transform along a shared
// waypoint loop, advancing each entity's own cursor as it arrives.
type NavigationSystem struct {
	waypoints   []vec.Vec2
	speed       float64
	arriveRange float64
	cursors     map[ecs.EntityID]int
}

// NewNavigationSystem creates a navigation system over the given waypoint
// loop. With no waypoints the system is inert.
func NewNavigationSystem(waypoints []vec.Vec2, speed, arriveRange float64) *NavigationSystem {
	return &NavigationSystem{
		waypoints:   waypoints,
		speed:       speed,
		arriveRange: arriveRange,
		cursors:     make(map[ecs.EntityID]int),
	}
}

// Update advances each steered entity toward its current waypoint, wrapping
// back to the first waypoint after the last one. Arrivals are published on
// the world's event bus before the cursor moves on.
func (s *NavigationSystem) Update(world *ecs.World, dt float64) {
	if len(s.waypoints) == 0 {
		return
	}
	world.Each(func(e ecs.Entity) {
		if !e.Active() {
			return
		}
		transform := ecs.GetComponent[*components.TransformComponent](e)
		if transform.IsNull() {
			return
		}
		defer transform.Release()

		cursor := s.cursors[e.ID()]
		target := s.waypoints[cursor]
		if vec.Distance(transform.Get().Position(), target) < s.arriveRange {
			world.Events().Publish(WaypointReachedEvent{
				Entity:   e.ID(),
				Index:    cursor,
				Waypoint: target,
			})
			cursor = (cursor + 1) % len(s.waypoints)
			s.cursors[e.ID()] = cursor
			target = s.waypoints[cursor]
		}
		transform.Get().Seek(target, s.speed, dt, s.arriveRange)
	})
}
