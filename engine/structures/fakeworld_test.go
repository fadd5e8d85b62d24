package structures_test

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
	"github.com/brackfield/beltworks/engine/items"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/brackfield/beltworks/engine/terrain"
)

// fakeWorld is a minimal in-memory World for exercising a single
// structure's Tick in isolation, without a real registry or terrain.
type fakeWorld struct {
	events    []core.Event
	dropped   []items.DropItem
	nextID    uint32
	loose     map[core.Id]items.DropItem
	itemAtPos map[core.Position]core.Id
	tech      inventory.Inventory
	techOK    bool
	occupied  map[[2]float64]bool
	cell      *terrain.Cell
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{loose: map[core.Id]items.DropItem{}, itemAtPos: map[core.Position]core.Id{}}
}

func (w *fakeWorld) CellAt(core.Position) *terrain.Cell { return w.cell }

func (w *fakeWorld) SpawnDropItem(kind core.ItemKind, x, y float64) core.Id {
	w.nextID++
	id := core.Id{Index: w.nextID}
	item := items.DropItem{X: x, Y: y, Kind: kind}
	w.loose[id] = item
	w.dropped = append(w.dropped, item)
	return id
}

func (w *fakeWorld) HitCheck(x, y float64, ignore *core.Id) bool {
	return w.occupied[[2]float64{x, y}]
}

func (w *fakeWorld) Emit(evt core.Event) { w.events = append(w.events, evt) }

func (w *fakeWorld) CurrentTick() uint64 { return 0 }

func (w *fakeWorld) CurrentTechnology() (inventory.Inventory, bool) { return w.tech, w.techOK }

// ItemAt only finds items a test registered via itemAtPos; it does not
// derive tile position from pixel coordinates the way the real world does.
func (w *fakeWorld) ItemAt(pos core.Position) (core.Id, core.ItemKind, bool) {
	id, ok := w.itemAtPos[pos]
	if !ok {
		return core.Id{}, 0, false
	}
	item, ok := w.loose[id]
	if !ok {
		return core.Id{}, 0, false
	}
	return id, item.Kind, true
}

func (w *fakeWorld) ConsumeItem(id core.Id) (items.DropItem, bool) {
	item, ok := w.loose[id]
	if ok {
		delete(w.loose, id)
	}
	return item, ok
}

// fakeNeighbors is a minimal in-memory Neighbors backed by a plain map,
// used to hand a structure a controlled view of "everyone else".
type fakeNeighbors struct {
	byID  map[core.Id]structures.Structure
	order []core.Id
}

func newFakeNeighbors() *fakeNeighbors {
	return &fakeNeighbors{byID: map[core.Id]structures.Structure{}}
}

func (n *fakeNeighbors) add(id core.Id, s structures.Structure) {
	n.byID[id] = s
	n.order = append(n.order, id)
}

func (n *fakeNeighbors) Get(id core.Id) (structures.Structure, bool) {
	s, ok := n.byID[id]
	return s, ok
}

func (n *fakeNeighbors) At(pos core.Position) (core.Id, bool) {
	for _, id := range n.order {
		if n.byID[id].Position() == pos {
			return id, true
		}
	}
	return core.Id{}, false
}

func (n *fakeNeighbors) Each(fn func(core.Id, structures.Structure)) {
	for _, id := range n.order {
		fn(id, n.byID[id])
	}
}
