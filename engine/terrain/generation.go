package terrain

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Params configures terrain generation, mirroring the recognised host
// options from spec.md §6.
type Params struct {
	Width               int // ignored when Unlimited is true
	Height              int
	Unlimited           bool
	Seed                int64
	WaterNoiseThreshold float64
	ResourceAmount      int
	NoiseScale          float64
	NoiseThreshold      float64
}

// oreChannel is one of the four ore-specific noise generators, paired
// with the ore kind it yields; New seeds each with its own salt, distinct
// from the others and from the water channel.
type oreChannel struct {
	kind  OreKind
	noise opensimplex.Noise
}

// Terrain is the chunked, lazily-generated tile grid. Chunks are created
// on first access and never removed, matching spec.md §3's "chunks are
// created lazily when accessed" lifecycle rule.
type Terrain struct {
	params Params
	chunks map[ChunkCoord]*Chunk
	water  opensimplex.Noise
	ores   [4]oreChannel
}

// New builds a Terrain generator seeded by params. Four independent
// OpenSimplex channels (one per OreKind) and one water channel are
// derived from params.Seed by XORing in a distinct per-channel salt, so
// every channel produces an uncorrelated field from a single seed
// (spec.md §6: "fractal Perlin noise with four ore-specific gradient term
// sets plus one water set").
func New(params Params) *Terrain {
	if params.NoiseScale == 0 {
		params.NoiseScale = 0.05
	}
	if params.NoiseThreshold == 0 {
		params.NoiseThreshold = 0.55
	}
	if params.WaterNoiseThreshold == 0 {
		params.WaterNoiseThreshold = 0.35
	}
	t := &Terrain{
		params: params,
		chunks: make(map[ChunkCoord]*Chunk),
		water:  opensimplex.New(params.Seed ^ 0x57a7e5),
	}
	salts := [4]int64{0x1e02, 0xc0bb3, 0xc0a1, 0x5704e}
	kinds := [4]OreKind{OreIron, OreCopper, OreCoal, OreStone}
	for i := range t.ores {
		t.ores[i] = oreChannel{kind: kinds[i], noise: opensimplex.New(params.Seed ^ salts[i])}
	}
	return t
}

// chunkAt returns the chunk containing tile (x,y), generating it lazily
// on first access.
func (t *Terrain) chunkAt(x, y int) *Chunk {
	coord := ChunkCoord{X: toChunkCoord(x), Y: toChunkCoord(y)}
	c, ok := t.chunks[coord]
	if !ok {
		c = t.generateChunk(coord)
		t.chunks[coord] = c
	}
	return c
}

// At returns a pointer to the cell at tile (x,y), generating its
// containing chunk if needed. The pointer is stable until the chunk map
// is discarded.
func (t *Terrain) At(x, y int) *Cell {
	c := t.chunkAt(x, y)
	lx, ly := localCoord(x), localCoord(y)
	return c.At(lx, ly)
}

// Invalidate marks the chunk containing (x,y) dirty, to be called after
// any mutation of that cell so the minimap buffer regenerates.
func (t *Terrain) Invalidate(x, y int) {
	t.chunkAt(x, y).Invalidate()
}

// localCoord maps a tile coordinate to its position within its chunk.
func localCoord(v int) int {
	m := v % Size
	if m < 0 {
		m += Size
	}
	return m
}

func (t *Terrain) generateChunk(coord ChunkCoord) *Chunk {
	c := &Chunk{}
	baseX, baseY := coord.X*Size, coord.Y*Size
	scale := t.params.NoiseScale
	for ly := 0; ly < Size; ly++ {
		for lx := 0; lx < Size; lx++ {
			x, y := baseX+lx, baseY+ly
			cell := c.At(lx, ly)
			waterVal := (t.water.Eval2(float64(x)*scale, float64(y)*scale) + 1) / 2
			if waterVal > 1-t.params.WaterNoiseThreshold {
				cell.Water = true
				continue
			}
			best := -1
			bestVal := t.params.NoiseThreshold
			for i, ch := range t.ores {
				v := (ch.noise.Eval2(float64(x)*scale, float64(y)*scale) + 1) / 2
				if v > bestVal {
					bestVal = v
					best = i
				}
			}
			if best >= 0 {
				qty := int(bestVal * float64(t.params.ResourceAmount))
				if qty > 0 {
					cell.Ore = &Ore{Kind: t.ores[best].kind, Quantity: qty}
				}
			}
		}
	}
	c.Invalidate()
	return c
}

// InBounds reports whether (x,y) falls inside the finite world, or
// always true when the world is unlimited.
func (t *Terrain) InBounds(x, y int) bool {
	if t.params.Unlimited {
		return true
	}
	return x >= 0 && y >= 0 && x < t.params.Width && y < t.params.Height
}
