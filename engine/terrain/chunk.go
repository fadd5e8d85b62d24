package terrain

import "image/color"

// Size is the edge length of a chunk in tiles (spec.md CHUNK_SIZE).
const Size = 16

// ChunkCoord identifies a chunk by its chunk-space coordinate (tile
// coordinate divided by Size, floored).
type ChunkCoord struct {
	X, Y int
}

// Chunk is a fixed Size x Size block of cells plus its precomputed
// minimap color buffer. The minimap buffer is a derived view, recomputed
// by RebuildMinimap only after Invalidate has marked the chunk dirty.
type Chunk struct {
	Cells   [Size * Size]Cell
	Minimap [Size * Size]color.RGBA
	dirty   bool
}

// At returns a pointer to the cell at the chunk-local coordinate (lx,ly).
// lx and ly must be in [0, Size).
func (c *Chunk) At(lx, ly int) *Cell {
	return &c.Cells[ly*Size+lx]
}

// Invalidate marks the chunk's minimap buffer as needing a rebuild. Chunk
// generation calls it; structure placement, removal and ore mining do not.
func (c *Chunk) Invalidate() {
	c.dirty = true
}

// RebuildMinimap recomputes the minimap color buffer from the current
// cell contents if it was marked dirty, returning whether it actually
// rebuilt anything.
func (c *Chunk) RebuildMinimap() bool {
	if !c.dirty {
		return false
	}
	for i := range c.Cells {
		c.Minimap[i] = cellColor(&c.Cells[i])
	}
	c.dirty = false
	return true
}

func cellColor(cell *Cell) color.RGBA {
	if cell.Water {
		return color.RGBA{R: 0x1c, G: 0x4e, B: 0x80, A: 0xff}
	}
	if cell.Ore != nil {
		switch cell.Ore.Kind {
		case OreIron:
			return color.RGBA{R: 0xb0, G: 0x8d, B: 0x57, A: 0xff}
		case OreCopper:
			return color.RGBA{R: 0xc6, G: 0x6b, B: 0x3d, A: 0xff}
		case OreCoal:
			return color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
		case OreStone:
			return color.RGBA{R: 0x9a, G: 0x97, B: 0x8f, A: 0xff}
		}
	}
	return color.RGBA{R: 0x4c, G: 0x6b, B: 0x3a, A: 0xff}
}

// toChunkCoord floors a tile coordinate down to its containing chunk.
func toChunkCoord(x int) int {
	if x >= 0 {
		return x / Size
	}
	return -((-x + Size - 1) / Size)
}
