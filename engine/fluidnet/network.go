package fluidnet

import "github.com/brackfield/beltworks/engine/core"

// DefaultRelaxation is the per-tick flow factor used when a caller has no
// config.Config to draw one from (spec.md's explicit Euler step with a
// relaxation factor of 0.1).
const DefaultRelaxation = 0.1

// Provider is the minimal view the fluid network needs of the structure
// registry: which ids currently own fluid boxes, where they sit, what
// structure (if any) occupies a neighboring tile, and that structure's
// boxes. It is implemented by the world package so fluidnet has no
// dependency on the structures or registry packages.
type Provider interface {
	// FluidStructureIds returns, in ascending id order, every structure
	// id that owns at least one fluid box.
	FluidStructureIds() []core.Id
	PositionOf(id core.Id) core.Position
	StructureAt(pos core.Position) (core.Id, bool)
	Boxes(id core.Id) []*Box
}

// Step runs one topology-discovery pass followed by one flow pass, per
// spec.md §4.5. Structures are visited in ascending id order and sides
// in index order 0..3, so the result is deterministic given a Provider
// that returns ids in the same order every tick. relaxation is the
// config-driven per-tick flow factor (engine/config's fluid_relaxation).
func Step(p Provider, relaxation float64) {
	topology(p)
	flow(p, relaxation)
}

func topology(p Provider) {
	ids := p.FluidStructureIds()
	for _, id := range ids {
		boxes := p.Boxes(id)
		if len(boxes) == 0 {
			continue
		}
		pos := p.PositionOf(id)
		for side := core.Rotation(0); side < 4; side++ {
			npos := pos.Add(side.Delta())
			nid, ok := p.StructureAt(npos)
			if !ok || nid == id {
				continue
			}
			if len(p.Boxes(nid)) == 0 {
				continue
			}
			neighbor := nid
			for _, b := range boxes {
				if b.Side != nil && *b.Side != side {
					continue
				}
				b.ConnectTo[side] = &neighbor
			}
		}
	}
}

func flow(p Provider, relaxation float64) {
	ids := p.FluidStructureIds()
	for _, id := range ids {
		boxes := p.Boxes(id)
		for _, s := range boxes {
			if s.Amount <= 0 {
				continue
			}
			if !s.InputEnabled && !s.OutputEnabled {
				continue
			}
			for side := core.Rotation(0); side < 4; side++ {
				nid := s.ConnectTo[side]
				if nid == nil {
					continue
				}
				n := resolveNeighborBox(p, *nid, side)
				if n == nil || n == s {
					continue
				}
				flowOne(s, n, relaxation)
			}
		}
	}
}

// resolveNeighborBox picks the neighbor box that faces back toward the
// side we arrived from: one whose Side is nil (connects on any side) or
// equal to the opposite direction, falling back to the neighbor's first
// box if none matches.
func resolveNeighborBox(p Provider, nid core.Id, side core.Rotation) *Box {
	boxes := p.Boxes(nid)
	if len(boxes) == 0 {
		return nil
	}
	opposite := (side + 2) % 4
	for _, b := range boxes {
		if b.Side == nil || *b.Side == opposite {
			return b
		}
	}
	return boxes[0]
}

// Equalize runs one flowOne step directly between two boxes that are not
// spatially adjacent (an underground pipe pair teleporting flow across
// its buried span). It applies the same relaxation formula the ordinary
// topology-derived flow pass uses.
func Equalize(a, b *Box, relaxation float64) {
	if a.Amount <= 0 && b.Amount <= 0 {
		return
	}
	flowOne(a, b, relaxation)
}

func flowOne(s, n *Box, relaxation float64) {
	if n.Amount > 0 && n.Kind != nil && s.Kind != nil && *n.Kind != *s.Kind {
		return // no mixing
	}
	pressure := n.Amount - s.Amount
	delta := pressure * relaxation
	if delta < 0 {
		// flow out of s, into n
		if !(s.OutputEnabled && n.InputEnabled) {
			return
		}
		if n.Filter != nil && s.Kind != nil && *n.Filter != *s.Kind {
			return
		}
	} else {
		// flow into s, from n
		if !(s.InputEnabled && n.OutputEnabled) {
			return
		}
		if s.Filter != nil && n.Kind != nil && *s.Filter != *n.Kind {
			return
		}
	}
	kind := sourceKind(s, n, delta)
	applyDelta(s, n, delta, kind)
}

// sourceKind determines which side's fluid kind propagates: the side the
// fluid is flowing out of.
func sourceKind(s, n *Box, delta float64) core.FluidKind {
	if delta < 0 {
		if s.Kind != nil {
			return *s.Kind
		}
	} else if n.Kind != nil {
		return *n.Kind
	}
	if s.Kind != nil {
		return *s.Kind
	}
	return core.FluidWater
}

func applyDelta(s, n *Box, delta float64, kind core.FluidKind) {
	s.SetAmount(s.Amount+delta, kind)
	n.SetAmount(n.Amount-delta, kind)
}
