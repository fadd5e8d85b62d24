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

func TestFurnaceSmeltsIronOreIntoPlate(t *testing.T) {
	cfg := config.Default()
	f := structures.NewFurnace(core.Position{X: 0, Y: 0}, core.Right, cfg)
	f.InputInv.Add(core.ItemIronOre, 1)
	f.Fuel.Add(core.ItemCoal, 1)

	w := newFakeWorld()
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: newFakeNeighbors()}

	for i := 0; i < 20; i++ {
		f.Tick(ctx)
	}

	assert.Equal(t, 1, f.OutputInv.Count(core.ItemIronPlate))
	assert.Equal(t, 0, f.InputInv.Count(core.ItemIronOre))
}

func TestFurnaceWithoutFuelNeverProgressesPastSelection(t *testing.T) {
	cfg := config.Default()
	f := structures.NewFurnace(core.Position{X: 0, Y: 0}, core.Right, cfg)
	f.InputInv.Add(core.ItemIronOre, 1)

	w := newFakeWorld()
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: newFakeNeighbors()}

	for i := 0; i < 5; i++ {
		f.Tick(ctx)
	}

	assert.Equal(t, 0, f.OutputInv.Count(core.ItemIronPlate), "no coal means no energy to progress the craft")
}

func TestAssemblerRejectsOutOfRangeRecipeIndex(t *testing.T) {
	a := structures.NewAssembler(core.Position{X: 0, Y: 0}, core.Right, 100)
	assert.ErrorIs(t, a.SelectRecipe(-1), core.ErrRecipeIndexOutOfRange)
	assert.ErrorIs(t, a.SelectRecipe(len(structures.AssemblerRecipes)), core.ErrRecipeIndexOutOfRange)
}

func TestAssemblerCraftsPlayerSelectedRecipeRepeatedly(t *testing.T) {
	a := structures.NewAssembler(core.Position{X: 0, Y: 0}, core.Right, 1000)
	require.NoError(t, a.SelectRecipe(1)) // copper-wire: 1 copper-plate -> 2 copper-wire
	a.Energy.Add(1000)
	a.InputInv.Add(core.ItemCopperPlate, 2)

	w := newFakeWorld()
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: newFakeNeighbors()}

	for i := 0; i < 15; i++ {
		a.Tick(ctx)
	}
	assert.Equal(t, 2, a.OutputInv.Count(core.ItemCopperWire))
	assert.NotNil(t, a.SelectedRecipe(), "a finished craft keeps running the same selected recipe")

	for i := 0; i < 15; i++ {
		a.Tick(ctx)
	}
	assert.Equal(t, 4, a.OutputInv.Count(core.ItemCopperWire), "a second unit of input should start a second craft")
}

func TestAssemblerRecipeSwitchIsDeferredUntilCraftFinishes(t *testing.T) {
	a := structures.NewAssembler(core.Position{X: 0, Y: 0}, core.Right, 1000)
	require.NoError(t, a.SelectRecipe(1))
	a.Energy.Add(1000)
	a.InputInv.Add(core.ItemCopperPlate, 1)

	w := newFakeWorld()
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: newFakeNeighbors()}
	a.Tick(ctx) // starts the craft, Progress != nil

	assert.NoError(t, a.SelectRecipe(0), "switching recipe mid-craft is accepted but has no effect yet")
	assert.Equal(t, structures.AssemblerRecipes[1].Name, a.SelectedRecipe().Name)
}

func TestOreMineSpawnsDropItemAndDepletesTile(t *testing.T) {
	cfg := config.Default()
	m := structures.NewOreMine(core.Position{X: 0, Y: 0}, core.Right, cfg)
	m.Fuel.Add(core.ItemCoal, 1)

	w := newFakeWorld()
	w.cell = &terrain.Cell{Ore: &terrain.Ore{Kind: terrain.OreIron, Quantity: 5}}
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: newFakeNeighbors()}

	for i := 0; i < 90; i++ {
		m.Tick(ctx)
	}

	require.Len(t, w.dropped, 1)
	assert.Equal(t, core.ItemIronOre, w.dropped[0].Kind)
	assert.Equal(t, 4, w.cell.Ore.Quantity)
}

func TestOreMineDeliversToNeighborInsteadOfDropping(t *testing.T) {
	cfg := config.Default()
	m := structures.NewOreMine(core.Position{X: 0, Y: 0}, core.Right, cfg)
	m.Fuel.Add(core.ItemCoal, 1)

	chest := structures.NewChest(core.Position{X: 1, Y: 0})
	neighbors := newFakeNeighbors()
	neighbors.add(core.Id{Index: 2}, chest)

	w := newFakeWorld()
	w.cell = &terrain.Cell{Ore: &terrain.Ore{Kind: terrain.OreIron, Quantity: 5}}
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: neighbors}

	for i := 0; i < 90; i++ {
		m.Tick(ctx)
	}

	assert.Empty(t, w.dropped, "a neighbor that accepts the ore should receive it directly")
	assert.Equal(t, 1, chest.Inv.Count(core.ItemIronOre))
}

func TestFactoryDestroyInventoryIncludesInFlightRecipeInputs(t *testing.T) {
	cfg := config.Default()
	f := structures.NewFurnace(core.Position{X: 0, Y: 0}, core.Right, cfg)
	f.InputInv.Add(core.ItemIronOre, 1)

	w := newFakeWorld()
	ctx := structures.TickContext{Me: core.Id{Index: 1}, World: w, Others: newFakeNeighbors()}
	f.Tick(ctx) // selects the recipe and consumes the ore into Progress; no fuel, so it stalls there

	inv := f.DestroyInventory()
	assert.Equal(t, 1, inv.Count(core.ItemIronOre), "ore already consumed into an in-progress craft must still be returned on destroy")
}
