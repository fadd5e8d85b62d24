package structures_test

import (
	"testing"

	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/brackfield/beltworks/engine/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterWellFillsItsOwnBoxEveryTick(t *testing.T) {
	w := structures.NewWaterWell(core.Position{X: 0, Y: 0}, 100)
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: newFakeWorld(), Others: newFakeNeighbors()}

	w.Tick(ctx)
	assert.Equal(t, 5.0, w.Box.Amount)
	assert.Equal(t, core.FluidWater, *w.Box.Kind)

	for i := 0; i < 30; i++ {
		w.Tick(ctx)
	}
	assert.Equal(t, 100.0, w.Box.Amount, "amount must clamp at MaxAmount")
}

func TestOffshorePumpOnlyFillsFromAWaterTile(t *testing.T) {
	p := structures.NewOffshorePump(core.Position{X: 1, Y: 0}, core.Right, 100)
	fw := newFakeWorld()
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: fw, Others: newFakeNeighbors()}

	p.Tick(ctx) // fw.cell is nil: no water tile behind
	assert.Equal(t, 0.0, p.Box.Amount)

	fw.cell = &terrain.Cell{Water: true}
	p.Tick(ctx)
	assert.Greater(t, p.Box.Amount, 0.0)
}

func TestUndergroundPipeEqualizesOnlyFromLowerIndexSide(t *testing.T) {
	cfg := config.Default()
	a := structures.NewUndergroundPipe(core.Position{X: 0, Y: 0}, core.Right, 100, cfg)
	b := structures.NewUndergroundPipe(core.Position{X: 2, Y: 0}, core.Right, 100, cfg)
	steam := core.FluidWater
	a.Box.SetAmount(100, steam)

	neighbors := newFakeNeighbors()
	aID, bID := core.Id{Index: 1}, core.Id{Index: 2}
	neighbors.add(aID, a)
	neighbors.add(bID, b)
	a.OnConstructionSelf(aID, neighbors, true)
	b.OnConstructionSelf(bID, neighbors, true)

	w := newFakeWorld()
	// Ticking from the higher-indexed side must be a no-op: the lower
	// index side owns the relaxation step to avoid applying it twice.
	b.Tick(structures.TickContext{Me: bID, World: w, Others: neighbors})
	assert.Equal(t, 0.0, b.Box.Amount)

	a.Tick(structures.TickContext{Me: aID, World: w, Others: neighbors})
	assert.Greater(t, b.Box.Amount, 0.0, "the lower-indexed side drives the equalization")
}

func TestBoilerConvertsWaterToSteamWhileFueled(t *testing.T) {
	cfg := config.Default()
	b := structures.NewBoiler(core.Position{X: 0, Y: 0}, core.Right, 1000, 1000, cfg)
	require.NoError(t, b.Input(core.ItemCoal))
	b.Water.SetAmount(100, core.FluidWater)

	w := newFakeWorld()
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: newFakeNeighbors()}
	b.Tick(ctx)

	assert.Less(t, b.Water.Amount, 100.0)
	assert.Greater(t, b.Steam.Amount, 0.0)
}

func TestSteamEngineConvertsSteamToEnergyAndSuppliesPowerOutlet(t *testing.T) {
	s := structures.NewSteamEngine(core.Position{X: 0, Y: 0}, core.Right, 100, 100)
	s.Steam.SetAmount(100, core.FluidSteam)

	w := newFakeWorld()
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: newFakeNeighbors()}
	s.Tick(ctx)

	assert.Equal(t, 0.0, s.Steam.Amount, "a full buffer converts in a single tick given enough room")
	assert.Equal(t, 50.0, s.Energy.Value)

	supplied := s.PowerOutlet(20)
	assert.Equal(t, 20.0, supplied)
	assert.Equal(t, 30.0, s.Energy.Value)
}
