package structures_test

import (
	"testing"

	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/items"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/stretchr/testify/assert"
)

func TestTransportBeltAdvancesAlongFacingAndSnapsToMidline(t *testing.T) {
	cfg := config.Default()
	b := structures.NewTransportBelt(core.Position{X: 0, Y: 0}, core.Right, cfg)

	item := items.DropItem{X: 10, Y: 20, Kind: core.ItemStone} // off the Y midline (16)
	resp := b.ItemResponse(item)

	assert.Equal(t, structures.RespMove, resp.Kind)
	assert.Equal(t, 10+cfg.BeltSpeed, resp.X)
	assert.Equal(t, 16.0, resp.Y, "cross-axis coordinate snaps to this tile's midline every call")
}

func TestSplitterTogglesLaneRegardlessOfWhetherTargetIsReachable(t *testing.T) {
	cfg := config.Default()
	s := structures.NewSplitter(core.Position{X: 0, Y: 0}, core.Right, cfg)

	midX := 16.0
	before := s.Toggle
	item := items.DropItem{X: midX - 0.5, Y: 16, Kind: core.ItemStone}
	resp := s.ItemResponse(item)

	assert.Equal(t, structures.RespMove, resp.Kind)
	assert.NotEqual(t, before, s.Toggle, "crossing the midline flips Toggle even though nothing checked reachability")
}

func TestSplitterFootprintCoversTwoTiles(t *testing.T) {
	cfg := config.Default()
	s := structures.NewSplitter(core.Position{X: 2, Y: 2}, core.Top, cfg)
	fp := s.Footprint()
	assert.Len(t, fp, 2)
	assert.Contains(t, fp, core.Position{X: 2, Y: 2})
}

func TestUndergroundBeltPairsWithNearestOppositeModeSameRotation(t *testing.T) {
	cfg := config.Default()
	entry := structures.NewUndergroundBelt(core.Position{X: 0, Y: 0}, core.Right, structures.ModeToGround, cfg)

	near := structures.NewUndergroundBelt(core.Position{X: 2, Y: 0}, core.Right, structures.ModeToSurface, cfg)
	far := structures.NewUndergroundBelt(core.Position{X: 3, Y: 0}, core.Right, structures.ModeToSurface, cfg)
	wrongRot := structures.NewUndergroundBelt(core.Position{X: 1, Y: 0}, core.Top, structures.ModeToSurface, cfg)

	neighbors := newFakeNeighbors()
	nearID, farID, wrongID := core.Id{Index: 2}, core.Id{Index: 3}, core.Id{Index: 4}
	neighbors.add(nearID, near)
	neighbors.add(farID, far)
	neighbors.add(wrongID, wrongRot)

	entry.OnConstructionSelf(core.Id{Index: 1}, neighbors, true)

	if assert.NotNil(t, entry.Partner) {
		assert.Equal(t, nearID, *entry.Partner, "the nearer compatible partner wins")
	}
}

func TestUndergroundBeltTeleportsAfterAgeExceedsDistanceThreshold(t *testing.T) {
	cfg := config.Default()
	entry := structures.NewUndergroundBelt(core.Position{X: 0, Y: 0}, core.Right, structures.ModeToGround, cfg)
	exit := structures.NewUndergroundBelt(core.Position{X: 2, Y: 0}, core.Right, structures.ModeToSurface, cfg)

	neighbors := newFakeNeighbors()
	entryID, exitID := core.Id{Index: 1}, core.Id{Index: 2}
	neighbors.add(entryID, entry)
	neighbors.add(exitID, exit)
	entry.OnConstructionSelf(entryID, neighbors, true)
	exit.OnConstructionSelf(exitID, neighbors, true)

	as := assert.New(t)
	as.NoError(entry.Input(core.ItemIronOre))

	w := newFakeWorld()
	entryCtx := structures.TickContext{Me: entryID, World: w, Others: neighbors}
	exitCtx := structures.TickContext{Me: exitID, World: w, Others: neighbors}

	threshold := 2 * cfg.TileSize // Chebyshev distance 2 tiles
	for i := 0; i < threshold+5; i++ {
		entry.Tick(entryCtx)
		exit.Tick(exitCtx)
	}

	as.NotEmpty(w.dropped, "the item should have emerged and stepped out onto the surface tile")
	as.Equal(core.ItemIronOre, w.dropped[0].Kind)
}

func TestUndergroundBeltSpillsInFlightItemsOnRotation(t *testing.T) {
	cfg := config.Default()
	entry := structures.NewUndergroundBelt(core.Position{X: 0, Y: 0}, core.Right, structures.ModeToGround, cfg)
	assertNoErr(t, entry.Input(core.ItemCoal))
	assertNoErr(t, entry.Input(core.ItemStone))

	entry.SetRotation(core.Top)

	spilled := entry.Spill()
	assert.ElementsMatch(t, []core.ItemKind{core.ItemCoal, core.ItemStone}, spilled)
	assert.Nil(t, entry.Partner)
}

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
