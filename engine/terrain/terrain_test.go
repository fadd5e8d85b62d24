package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterCellsNeverCarryOre(t *testing.T) {
	terr := New(Params{Seed: 7, NoiseScale: 0.08, NoiseThreshold: 0.4, WaterNoiseThreshold: 0.5, ResourceAmount: 100})
	for y := -20; y < 20; y++ {
		for x := -20; x < 20; x++ {
			cell := terr.At(x, y)
			if cell.Water {
				assert.Nil(t, cell.Ore, "water tile at (%d,%d) must not carry ore", x, y)
			}
		}
	}
}

func TestChunkLazilyGeneratedAndStable(t *testing.T) {
	terr := New(Params{Seed: 1})
	a := terr.At(5, 5)
	b := terr.At(5, 5)
	assert.Same(t, a, b, "repeated access must return the same cell pointer")
}

func TestMineReducesQuantityAndClearsAtZero(t *testing.T) {
	cell := &Cell{Ore: &Ore{Kind: OreIron, Quantity: 3}}
	taken := cell.Mine(2)
	assert.Equal(t, 2, taken)
	require.NotNil(t, cell.Ore)
	assert.Equal(t, 1, cell.Ore.Quantity)

	taken = cell.Mine(5)
	assert.Equal(t, 1, taken)
	assert.Nil(t, cell.Ore)
}

func TestMinimapRebuildsOnlyWhenDirty(t *testing.T) {
	terr := New(Params{Seed: 3})
	c := terr.chunkAt(0, 0)
	assert.True(t, c.RebuildMinimap(), "freshly generated chunk should be dirty once")
	assert.False(t, c.RebuildMinimap(), "second call with no changes should be a no-op")

	c.Invalidate()
	assert.True(t, c.RebuildMinimap())
}

func TestInBoundsRespectsUnlimited(t *testing.T) {
	bounded := New(Params{Width: 10, Height: 10})
	assert.True(t, bounded.InBounds(9, 9))
	assert.False(t, bounded.InBounds(10, 0))

	unlimited := New(Params{Unlimited: true})
	assert.True(t, unlimited.InBounds(-1000, 1000))
}

func TestToChunkCoordNegativeSeam(t *testing.T) {
	assert.Equal(t, -1, toChunkCoord(-1))
	assert.Equal(t, -1, toChunkCoord(-Size))
	assert.Equal(t, -2, toChunkCoord(-Size-1))
	assert.Equal(t, 0, toChunkCoord(0))
	assert.Equal(t, 0, toChunkCoord(Size-1))
	assert.Equal(t, 1, toChunkCoord(Size))
}
