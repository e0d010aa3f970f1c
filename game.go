package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"ebiten-seeker/components"
	"ebiten-seeker/config"
	"ebiten-seeker/ecs"
	"ebiten-seeker/entities"
	"ebiten-seeker/handles"
	"ebiten-seeker/systems"
	"ebiten-seeker/vec"
)

// Game implements the ebiten.Game interface. It owns the ECS world, a
// per-type service holder shared with anything that needs the config or the
// event bus, and one fixture shape drawn outside the entity system.
type Game struct {
	world   *ecs.World
	slots   *handles.Slots
	fixture handles.Shared[*components.ShapeComponent]
	log     zerolog.Logger
}

// NewGame builds the demo scene: a static yellow circle and a red actor
// looping the configured waypoints.
func NewGame(cfg *config.Config, logger zerolog.Logger) (*Game, error) {
	world := ecs.NewWorld()

	slots := handles.NewSlots()
	handles.SetSlot(slots, cfg)
	handles.SetSlot(slots, world.Events())

	fixtureShape := components.NewShapeComponent()
	if err := fixtureShape.SetShape(components.ShapeCircle); err != nil {
		return nil, err
	}
	fixtureShape.SetFillColor(color.RGBA{R: 0xff, G: 0xff, A: 0xff})
	fixtureShape.SetPosition(vec.V(200, 150))
	fixture := handles.NewShared(fixtureShape)

	actor := entities.NewActor("circle actor")
	shape := ecs.GetComponent[*components.ShapeComponent](actor)
	transform := ecs.GetComponent[*components.TransformComponent](actor)
	err := shape.Get().SetShape(components.ShapeCircle)
	if err == nil {
		shape.Get().SetFillColor(color.RGBA{R: 0xff, A: 0xff})
		transform.Get().SetPosition(cfg.Actor.Start.Vec2())
	}
	shape.Release()
	transform.Release()
	if err != nil {
		fixture.Release()
		return nil, err
	}
	world.AddEntity(actor)

	world.AddSystem(systems.NewNavigationSystem(
		cfg.WaypointVecs(), cfg.Actor.Speed, cfg.Actor.ArriveRange))

	world.Events().Subscribe(systems.EventWaypointReached, func(ev ecs.Event) {
		arrived := ev.(systems.WaypointReachedEvent)
		logger.Debug().
			Uint64("entity", uint64(arrived.Entity)).
			Int("waypoint", arrived.Index).
			Msg("waypoint reached")
	})

	logger.Info().
		Int("waypoints", len(cfg.Waypoints)).
		Str("actor", actor.Name()).
		Msg("scene ready")

	return &Game{world: world, slots: slots, fixture: fixture, log: logger}, nil
}

// Update advances the world by one fixed step.
func (g *Game) Update() error {
	g.world.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the fixture and the world.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})
	if !g.fixture.IsNull() {
		g.fixture.Get().Draw(screen)
	}
	g.world.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := handles.GetSlot[*config.Config](g.slots)
	return cfg.Window.Width, cfg.Window.Height
}

// Close tears the scene down deterministically.
func (g *Game) Close() {
	g.fixture.Release()
	g.world.Close()
	g.slots.Close()
	g.log.Info().Msg("scene closed")
}
