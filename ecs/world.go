package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-seeker/handles"
)

// World owns the live entities and runs registered systems over them.
// Entities are held through shared handles so callers can alias them safely;
// removing an entity destroys it together with its components.
type World struct {
	entities map[EntityID]*handles.Shared[Entity]
	// order keeps iteration in creation order; maps do not
	order   []EntityID
	systems []System
	events  *EventBus
}

// NewWorld creates an empty world with its own event bus
func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]*handles.Shared[Entity]),
		events:   NewEventBus(),
	}
}

// AddEntity takes ownership of e, runs its Init and returns its ID.
func (w *World) AddEntity(e Entity) EntityID {
	h := handles.NewShared(e)
	w.entities[e.ID()] = &h
	w.order = append(w.order, e.ID())
	e.Init()
	return e.ID()
}

// RemoveEntity destroys the entity and drops the world's ownership of it.
// Outstanding aliases keep the destroyed entity's storage alive until they
// release.
func (w *World) RemoveEntity(id EntityID) {
	h, ok := w.entities[id]
	if !ok {
		return
	}
	if e := h.Get(); e != nil {
		e.Destroy()
	}
	h.Release()
	delete(w.entities, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Entity returns a new alias of the entity's owning handle, or an empty
// handle if the ID is unknown. The caller releases it when done.
func (w *World) Entity(id EntityID) handles.Shared[Entity] {
	if h, ok := w.entities[id]; ok {
		return h.Clone()
	}
	return handles.Shared[Entity]{}
}

// Each calls fn for every live entity in creation order.
func (w *World) Each(fn func(Entity)) {
	for _, id := range w.order {
		if e := w.entities[id].Get(); e != nil {
			fn(e)
		}
	}
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return w.events
}

// AddSystem registers a system; systems run in registration order.
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs all systems, then updates every active entity.
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
	for _, id := range w.order {
		if e := w.entities[id].Get(); e != nil && e.Active() {
			e.Update(dt)
		}
	}
}

// Draw renders every active entity to screen in creation order.
func (w *World) Draw(screen *ebiten.Image) {
	for _, id := range w.order {
		if e := w.entities[id].Get(); e != nil && e.Active() {
			e.Draw(screen)
		}
	}
}

// Close destroys all entities, releases their handles and drops all systems.
func (w *World) Close() {
	for _, id := range w.order {
		h := w.entities[id]
		if e := h.Get(); e != nil {
			e.Destroy()
		}
		h.Release()
	}
	w.entities = make(map[EntityID]*handles.Shared[Entity])
	w.order = nil
	w.systems = nil
}
