package world

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/fluidnet"
	"github.com/brackfield/beltworks/engine/items"
	"github.com/brackfield/beltworks/engine/powernet"
	"github.com/brackfield/beltworks/engine/structures"
)

// Tick advances the simulation by one step, in the exact order spec.md
// §4.10 specifies: apply pending commands, run the fluid network, run
// every structure in ascending id order, move or consume every drop
// item, then rebuild and settle the power network.
func (w *World) Tick(dt float64) {
	w.tickErrs = w.tickErrs[:0]

	w.applyPending()
	fluidnet.Step(w, w.cfg.FluidRelaxation)
	w.runStructures()
	w.events.Dispatch()
	w.runItems()
	w.runPower()

	w.simTime += dt
	w.tickCount++
}

func (w *World) runStructures() {
	for _, id := range w.reg.Ids() {
		s, ok := w.reg.Get(id)
		if !ok {
			continue
		}
		t, ok := s.(structures.Ticker)
		if !ok {
			continue
		}
		w.runOne(id, t)
	}
}

// runOne calls a single structure's Tick, recovering from a panic the way
// spec.md §7 requires ("contained — they cannot poison other structures;
// they are logged and the tick continues").
func (w *World) runOne(id core.Id, t structures.Ticker) {
	defer func() {
		if r := recover(); r != nil {
			err := errInternalf("structure %v panicked during tick: %v", id, r)
			w.tickErrs = append(w.tickErrs, err)
			w.log.Warn("structure tick panic", "id", id, "error", err)
		}
	}()
	t.Tick(structures.TickContext{
		Me:     id,
		World:  w,
		Others: w.reg.Excluding(id),
	})
}

// runItems calls item_response for every drop item whose tile holds a
// structure, applying the proposed move only if it doesn't collide with
// another item or leave the finite world (spec.md §4.10 step 4).
func (w *World) runItems() {
	var toConsume []consumeRequest
	w.items.Each(func(id core.Id, item *items.DropItem) {
		pos := pixelTile(item.X, item.Y, w.cfg.TileSize)
		sid, ok := w.reg.At(pos)
		if !ok {
			return
		}
		s, ok := w.reg.Get(sid)
		if !ok {
			return
		}
		responder, ok := s.(structures.ItemResponder)
		if !ok {
			return
		}
		resp := responder.ItemResponse(*item)
		switch resp.Kind {
		case structures.RespMove:
			if w.terrain != nil {
				npos := pixelTile(resp.X, resp.Y, w.cfg.TileSize)
				if !w.terrain.InBounds(npos.X, npos.Y) {
					return
				}
			}
			if w.items.HitCheckIndexed(resp.X, resp.Y, &id) {
				return
			}
			w.items.Move(id, resp.X, resp.Y)
		case structures.RespConsume:
			toConsume = append(toConsume, consumeRequest{item: id, structure: sid})
		}
	})
	for _, req := range toConsume {
		w.deliverToStructure(req)
	}
}

type consumeRequest struct {
	item      core.Id
	structure core.Id
}

func (w *World) deliverToStructure(req consumeRequest) {
	item, ok := w.items.Remove(req.item)
	if !ok {
		return
	}
	s, ok := w.reg.Get(req.structure)
	if !ok {
		return
	}
	in, ok := s.(structures.Inputter)
	if !ok {
		return
	}
	if err := in.Input(item.Kind); err != nil {
		w.tickErrs = append(w.tickErrs, err)
		w.log.Warn("item delivery rejected", "structure", req.structure, "kind", item.Kind, "error", err)
	}
}

func pixelTile(x, y float64, tileSize int) core.Position {
	return core.Position{X: tileOf(x, tileSize), Y: tileOf(y, tileSize)}
}

// runPower rebuilds the power network topology when dirty and satisfies
// every sink's demand from its network's sources in ascending id order
// (spec.md §4.6).
func (w *World) runPower() {
	if w.powerDirty {
		w.networks = powernet.Discover(w)
		w.powerDirty = false
	}
	for _, net := range w.networks {
		for _, sinkID := range net.Sinks {
			w.satisfySink(net, sinkID)
		}
	}
}

func (w *World) satisfySink(net powernet.Network, sinkID core.Id) {
	s, ok := w.reg.Get(sinkID)
	if !ok {
		return
	}
	sink, ok := s.(structures.PowerSink)
	if !ok {
		return
	}
	demand := sink.PowerDemand()
	if demand <= 0 {
		return
	}
	for _, srcID := range net.Sources {
		if demand <= 0 {
			break
		}
		src, ok := w.reg.Get(srcID)
		if !ok {
			continue
		}
		source, ok := src.(structures.PowerSource)
		if !ok {
			continue
		}
		supplied := source.PowerOutlet(demand)
		if supplied <= 0 {
			continue
		}
		sink.AddEnergy(supplied)
		demand -= supplied
	}
}
