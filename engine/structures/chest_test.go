package structures_test

import (
	"testing"

	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChestAcceptsAnyKindAndRoundTrips(t *testing.T) {
	c := structures.NewChest(core.Position{X: 0, Y: 0})
	assert.True(t, c.CanInput(core.ItemStone))

	require.NoError(t, c.Input(core.ItemStone))
	require.NoError(t, c.Input(core.ItemIronPlate))
	assert.Equal(t, 1, c.CanOutput().Count(core.ItemStone))

	assert.True(t, c.Output(core.ItemStone))
	assert.False(t, c.Output(core.ItemStone), "a second withdrawal with nothing left must fail")
}

func TestChestDestroyInventoryReturnsAnIndependentClone(t *testing.T) {
	c := structures.NewChest(core.Position{X: 0, Y: 0})
	require.NoError(t, c.Input(core.ItemGear))

	spilled := c.DestroyInventory()
	spilled.Add(core.ItemGear, 5)

	assert.Equal(t, 1, c.Inv.Count(core.ItemGear), "mutating the spilled clone must not affect the live chest")
}
