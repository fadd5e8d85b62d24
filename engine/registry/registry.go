// Package registry holds every placed structure in a generational set
// keyed by core.Id, plus a tile-occupancy index for structure_at queries,
// and hands out the "one exclusive + rest shared" split-access view the
// tick loop and construction events need to let structure A interact
// with structures B..Z within one tick without copying (spec.md §4.2).
package registry

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/structures"
)

// Registry stores every live structure and the tile(s) each occupies.
type Registry struct {
	set    *core.GenSet[structures.Structure]
	tileOf map[core.Position]core.Id
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		set:    core.NewGenSet[structures.Structure](),
		tileOf: make(map[core.Position]core.Id),
	}
}

// Add inserts s, claiming every tile of its footprint. It fails with
// core.ErrOccupied if any of those tiles is already claimed.
func (r *Registry) Add(s structures.Structure) (core.Id, error) {
	footprint := structures.Footprint(s)
	for _, pos := range footprint {
		if _, occupied := r.tileOf[pos]; occupied {
			return core.Id{}, core.ErrOccupied
		}
	}
	id := r.set.Add(s)
	for _, pos := range footprint {
		r.tileOf[pos] = id
	}
	return id, nil
}

// Remove deletes the structure at id, freeing every tile of its
// footprint, and returns the removed value.
func (r *Registry) Remove(id core.Id) (structures.Structure, bool) {
	sp, ok := r.set.Get(id)
	if !ok {
		return nil, false
	}
	s := *sp
	for _, pos := range structures.Footprint(s) {
		delete(r.tileOf, pos)
	}
	r.set.Remove(id)
	return s, true
}

// Get returns the structure at id, if live.
func (r *Registry) Get(id core.Id) (structures.Structure, bool) {
	sp, ok := r.set.Get(id)
	if !ok {
		return nil, false
	}
	return *sp, true
}

// Has reports whether id currently resolves to a live structure.
func (r *Registry) Has(id core.Id) bool {
	return r.set.Has(id)
}

// Len returns the number of live structures.
func (r *Registry) Len() int {
	return r.set.Len()
}

// Ids returns every live id in ascending slot-index order, the ordering
// spec.md §5 requires the tick loop to process structures in.
func (r *Registry) Ids() []core.Id {
	return r.set.Ids()
}

// Each calls fn for every live structure in ascending id order.
func (r *Registry) Each(fn func(core.Id, structures.Structure)) {
	r.set.Each(func(id core.Id, sp *structures.Structure) {
		fn(id, *sp)
	})
}

// At returns the id occupying pos, if any.
func (r *Registry) At(pos core.Position) (core.Id, bool) {
	id, ok := r.tileOf[pos]
	return id, ok
}

// Excluding returns a View of every structure except id, for handing to
// the structure at id during its turn.
func (r *Registry) Excluding(id core.Id) View {
	return View{r: r, excluded: id, hasExcl: true}
}

// All returns a View over every structure with nothing excluded, used by
// construction events where there is no "self" being iterated.
func (r *Registry) All() View {
	return View{r: r}
}

// View is a read-mostly window onto the registry that never yields the
// excluded id, even via Each. It implements structures.Neighbors.
type View struct {
	r        *Registry
	excluded core.Id
	hasExcl  bool
}

// Get returns the structure at id, unless id is the excluded id.
func (v View) Get(id core.Id) (structures.Structure, bool) {
	if v.hasExcl && id == v.excluded {
		return nil, false
	}
	return v.r.Get(id)
}

// At returns the id occupying pos, unless it is the excluded id.
func (v View) At(pos core.Position) (core.Id, bool) {
	id, ok := v.r.At(pos)
	if !ok {
		return core.Id{}, false
	}
	if v.hasExcl && id == v.excluded {
		return core.Id{}, false
	}
	return id, true
}

// Each calls fn for every structure in the view, skipping the excluded
// id, in ascending id order.
func (v View) Each(fn func(core.Id, structures.Structure)) {
	v.r.set.Each(func(id core.Id, sp *structures.Structure) {
		if v.hasExcl && id == v.excluded {
			return
		}
		fn(id, *sp)
	})
}
