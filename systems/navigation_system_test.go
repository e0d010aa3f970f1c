package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-seeker/components"
	"ebiten-seeker/ecs"
	"ebiten-seeker/entities"
	"ebiten-seeker/vec"
)

// bareEntity has no components at all.
type bareEntity struct {
	ecs.BaseEntity
}

func (e *bareEntity) Init()                     {}
func (e *bareEntity) Update(dt float64)         {}
func (e *bareEntity) Draw(screen *ebiten.Image) {}
func (e *bareEntity) Destroy()                  {}

func newBareEntity() *bareEntity {
	return &bareEntity{BaseEntity: ecs.NewBaseEntity()}
}

func newWorldWithActor(t *testing.T, start vec.Vec2) (*ecs.World, *entities.Actor) {
	t.Helper()
	w := ecs.NewWorld()
	a := entities.NewActor("nav tester")
	transform := ecs.GetComponent[*components.TransformComponent](a)
	require.False(t, transform.IsNull())
	transform.Get().SetPosition(start)
	transform.Release()
	w.AddEntity(a)
	return w, a
}

func actorPosition(t *testing.T, a *entities.Actor) vec.Vec2 {
	t.Helper()
	transform := ecs.GetComponent[*components.TransformComponent](a)
	require.False(t, transform.IsNull())
	defer transform.Release()
	return transform.Get().Position()
}

func TestNavigationSeeksCurrentWaypoint(t *testing.T) {
	w, a := newWorldWithActor(t, vec.V(0, 0))
	w.AddSystem(NewNavigationSystem([]vec.Vec2{vec.V(100, 0)}, 50, 10))

	w.Update(1.0)
	assert.InDelta(t, 50, actorPosition(t, a).X, 1e-9)
}

func TestNavigationAdvancesOnArrival(t *testing.T) {
	w, a := newWorldWithActor(t, vec.V(95, 0))
	w.AddSystem(NewNavigationSystem([]vec.Vec2{vec.V(100, 0), vec.V(200, 0)}, 50, 10))

	var events []WaypointReachedEvent
	w.Events().Subscribe(EventWaypointReached, func(ev ecs.Event) {
		events = append(events, ev.(WaypointReachedEvent))
	})

	w.Update(1.0)
	require.Len(t, events, 1)
	assert.Equal(t, 0, events[0].Index)
	assert.Equal(t, a.ID(), events[0].Entity)
	// cursor moved on, so the tick already steers toward the next waypoint
	assert.InDelta(t, 145, actorPosition(t, a).X, 1e-9)
}

func TestNavigationWrapsAroundWaypointLoop(t *testing.T) {
	w, _ := newWorldWithActor(t, vec.V(100, 0))
	// both waypoints stay within arrival range, so every tick advances
	w.AddSystem(NewNavigationSystem([]vec.Vec2{vec.V(100, 0), vec.V(105, 0)}, 1, 10))

	var indices []int
	w.Events().Subscribe(EventWaypointReached, func(ev ecs.Event) {
		indices = append(indices, ev.(WaypointReachedEvent).Index)
	})

	w.Update(1.0)
	w.Update(1.0)
	w.Update(1.0)
	assert.Equal(t, []int{0, 1, 0}, indices)
}

func TestNavigationIgnoresEntitiesWithoutTransform(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewNavigationSystem([]vec.Vec2{vec.V(10, 0)}, 50, 10))
	e := newBareEntity()
	w.AddEntity(e)

	// must not panic or publish anything
	w.Update(1.0)
}

func TestNavigationNoWaypointsIsInert(t *testing.T) {
	w, a := newWorldWithActor(t, vec.V(5, 5))
	w.AddSystem(NewNavigationSystem(nil, 50, 10))

	w.Update(1.0)
	assert.Equal(t, vec.V(5, 5), actorPosition(t, a))
}

func TestNavigationSkipsInactiveEntities(t *testing.T) {
	w, a := newWorldWithActor(t, vec.V(0, 0))
	w.AddSystem(NewNavigationSystem([]vec.Vec2{vec.V(100, 0)}, 50, 10))
	a.SetActive(false)

	w.Update(1.0)
	assert.Equal(t, vec.V(0, 0), actorPosition(t, a))
}
