package ecs

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kindHealth ComponentID = iota
	kindLabel
)

type healthComponent struct {
	hp        int
	updates   int
	destroyed int
}

func (c *healthComponent) Kind() ComponentID     { return kindHealth }
func (c *healthComponent) Init()                 {}
func (c *healthComponent) Update(dt float64)     { c.updates++ }
func (c *healthComponent) Draw(sc *ebiten.Image) {}
func (c *healthComponent) Destroy()              { c.destroyed++ }

type labelComponent struct {
	text string
}

func (c *labelComponent) Kind() ComponentID     { return kindLabel }
func (c *labelComponent) Init()                 {}
func (c *labelComponent) Update(dt float64)     {}
func (c *labelComponent) Draw(sc *ebiten.Image) {}
func (c *labelComponent) Destroy()              {}

type testEntity struct {
	BaseEntity
	updates int
}

func (e *testEntity) Init()                 { e.InitComponents() }
func (e *testEntity) Update(dt float64)     { e.updates++; e.UpdateComponents(dt) }
func (e *testEntity) Draw(sc *ebiten.Image) { e.DrawComponents(sc) }
func (e *testEntity) Destroy()              { e.DestroyComponents() }

func newTestEntity() *testEntity {
	return &testEntity{BaseEntity: NewBaseEntity()}
}

func TestNewEntityIDsAreUnique(t *testing.T) {
	a := newTestEntity()
	b := newTestEntity()
	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.Active())
}

func TestGetComponentByType(t *testing.T) {
	e := newTestEntity()
	health := &healthComponent{hp: 10}
	label := &labelComponent{text: "goblin"}
	e.AddComponent(health)
	e.AddComponent(label)

	gotHealth := GetComponent[*healthComponent](e)
	require.False(t, gotHealth.IsNull())
	assert.Same(t, health, gotHealth.Get())
	gotHealth.Release()

	gotLabel := GetComponent[*labelComponent](e)
	require.False(t, gotLabel.IsNull())
	assert.Same(t, label, gotLabel.Get())
	gotLabel.Release()
}

func TestGetComponentAbsentReturnsEmpty(t *testing.T) {
	e := newTestEntity()
	e.AddComponent(&healthComponent{})

	got := GetComponent[*labelComponent](e)
	assert.True(t, got.IsNull())
}

func TestGetComponentReturnsFirstInAttachmentOrder(t *testing.T) {
	e := newTestEntity()
	first := &healthComponent{hp: 1}
	second := &healthComponent{hp: 2}
	e.AddComponent(first)
	e.AddComponent(second)

	got := GetComponent[*healthComponent](e)
	require.False(t, got.IsNull())
	assert.Same(t, first, got.Get())
	got.Release()
}

func TestDestroyComponentsTearsDownOnce(t *testing.T) {
	e := newTestEntity()
	health := &healthComponent{}
	e.AddComponent(health)

	e.Destroy()
	assert.Equal(t, 1, health.destroyed)
	assert.Empty(t, e.Components())
}

func TestUpdateComponentsRunsInOrder(t *testing.T) {
	e := newTestEntity()
	health := &healthComponent{}
	e.AddComponent(health)

	e.Update(0.5)
	assert.Equal(t, 1, e.updates)
	assert.Equal(t, 1, health.updates)
}
