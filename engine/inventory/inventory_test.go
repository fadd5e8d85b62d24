package inventory

import (
	"testing"

	"github.com/brackfield/beltworks/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestAddZeroCountRemovesKey(t *testing.T) {
	inv := New()
	inv.Add(core.ItemIronPlate, 3)
	inv.Add(core.ItemIronPlate, -3)
	_, present := inv[core.ItemIronPlate]
	assert.False(t, present)
	assert.Equal(t, 0, inv.Count(core.ItemIronPlate))
}

func TestRemoveFailsWhenInsufficient(t *testing.T) {
	inv := New()
	inv.Add(core.ItemIronOre, 2)
	ok := inv.Remove(core.ItemIronOre, 5)
	assert.False(t, ok)
	assert.Equal(t, 2, inv.Count(core.ItemIronOre))
}

func TestHasAllAndRemoveAll(t *testing.T) {
	inv := New()
	inv.Add(core.ItemIronPlate, 2)
	inv.Add(core.ItemGear, 1)
	need := Inventory{core.ItemIronPlate: 2, core.ItemGear: 1}
	assert.True(t, inv.HasAll(need))
	inv.RemoveAll(need)
	assert.Equal(t, 0, inv.Count(core.ItemIronPlate))
	assert.Equal(t, 0, inv.Count(core.ItemGear))
}

func TestMergeConservesCounts(t *testing.T) {
	a := Inventory{core.ItemIronOre: 3}
	b := Inventory{core.ItemIronOre: 2, core.ItemCoal: 1}
	merged := Merge(a, b)
	assert.Equal(t, 5, merged.Count(core.ItemIronOre))
	assert.Equal(t, 1, merged.Count(core.ItemCoal))
	// originals untouched
	assert.Equal(t, 3, a.Count(core.ItemIronOre))
}

func TestRecipeSatisfied(t *testing.T) {
	r := Recipe{Input: Inventory{core.ItemIronOre: 1}, RecipeTime: 80}
	inv := New()
	assert.False(t, r.Satisfied(inv))
	inv.Add(core.ItemIronOre, 1)
	assert.True(t, r.Satisfied(inv))
}
