// Package world composes the generational registry, item store, terrain,
// fluid and power networks into the simulation's single mutable root, and
// drives the per-tick orchestration spec.md §4.10 specifies.
package world

import (
	"io"
	"log/slog"

	"github.com/brackfield/beltworks/engine/commands"
	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/fluidnet"
	"github.com/brackfield/beltworks/engine/inventory"
	"github.com/brackfield/beltworks/engine/items"
	"github.com/brackfield/beltworks/engine/powernet"
	"github.com/brackfield/beltworks/engine/registry"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/brackfield/beltworks/engine/terrain"
)

// World is the simulation root: every structure, every loose drop item,
// the terrain grid, the wire graph and its derived power networks, and
// the research state. The host owns one World per running game.
type World struct {
	cfg     *config.Config
	log     *slog.Logger
	terrain *terrain.Terrain
	items   *items.Store
	reg     *registry.Registry
	events  *core.EventBus

	wires      []powernet.Wire
	networks   []powernet.Network
	powerDirty bool

	tickCount uint64
	simTime   float64

	pending   []commands.Command
	recorder  *commands.Log
	tickErrs  []error

	research researchState
}

// New constructs an empty World over the given terrain and configuration.
// A nil logger discards every log record (spec.md §2.1).
func New(cfg *config.Config, t *terrain.Terrain, logger *slog.Logger) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	w := &World{
		cfg:      cfg,
		log:      logger,
		terrain:  t,
		items:    items.NewStore(float64(cfg.ChunkSize * cfg.TileSize)),
		reg:      registry.New(),
		events:   core.NewEventBus(),
		research: newResearchState(),
	}
	w.events.On(core.EvtUpdateResearch, w.onResearchEvent)
	return w
}

// Config returns the configuration this world was built with.
func (w *World) Config() *config.Config { return w.cfg }

// Recorder attaches a command log every command passed to Enqueue is
// appended to (at enqueue time, whether or not it is later accepted),
// for later replay (spec.md §8's save/replay round-trip).
func (w *World) Recorder(l *commands.Log) { w.recorder = l }

// TickCount returns the number of completed ticks.
func (w *World) TickCount() uint64 { return w.tickCount }

// SimTime returns accumulated simulated seconds.
func (w *World) SimTime() float64 { return w.simTime }

// Errors returns every per-structure error collected during the most
// recent Tick, cleared at the start of the next one (spec.md §7: these
// never stop the tick, just get logged and surfaced for inspection).
func (w *World) Errors() []error { return w.tickErrs }

// --- structures.World ---

func (w *World) CellAt(pos core.Position) *terrain.Cell {
	if w.terrain == nil {
		return nil
	}
	return w.terrain.At(pos.X, pos.Y)
}

func (w *World) SpawnDropItem(kind core.ItemKind, x, y float64) core.Id {
	return w.items.Add(items.DropItem{X: x, Y: y, Kind: kind})
}

func (w *World) HitCheck(x, y float64, ignore *core.Id) bool {
	return w.items.HitCheckIndexed(x, y, ignore)
}

func (w *World) Emit(evt core.Event) {
	w.events.Emit(evt)
}

func (w *World) CurrentTick() uint64 { return w.tickCount }

func (w *World) CurrentTechnology() (inventory.Inventory, bool) {
	return w.research.currentInput()
}

// ItemAt returns an arbitrary drop item whose tile is pos, scanning every
// drop item in the store.
func (w *World) ItemAt(pos core.Position) (core.Id, core.ItemKind, bool) {
	var (
		found core.Id
		kind  core.ItemKind
		ok    bool
	)
	w.items.Each(func(id core.Id, item *items.DropItem) {
		if ok {
			return
		}
		if tileOf(item.X, w.cfg.TileSize) == pos.X && tileOf(item.Y, w.cfg.TileSize) == pos.Y {
			found, kind, ok = id, item.Kind, true
		}
	})
	return found, kind, ok
}

func (w *World) ConsumeItem(id core.Id) (items.DropItem, bool) {
	return w.items.Remove(id)
}

func tileOf(pixel float64, tileSize int) int {
	t := float64(tileSize)
	v := pixel / t
	if v >= 0 {
		return int(v)
	}
	i := int(v)
	if float64(i) != v {
		i--
	}
	return i
}

// --- fluidnet.Provider ---

func (w *World) FluidStructureIds() []core.Id {
	var ids []core.Id
	w.reg.Each(func(id core.Id, s structures.Structure) {
		if fb, ok := s.(structures.FluidBoxer); ok && len(fb.FluidBoxes()) > 0 {
			ids = append(ids, id)
		}
	})
	return ids
}

func (w *World) PositionOf(id core.Id) core.Position {
	s, ok := w.reg.Get(id)
	if !ok {
		return core.Position{}
	}
	return s.Position()
}

func (w *World) StructureAt(pos core.Position) (core.Id, bool) {
	return w.reg.At(pos)
}

func (w *World) Boxes(id core.Id) []*fluidnet.Box {
	s, ok := w.reg.Get(id)
	if !ok {
		return nil
	}
	fb, ok := s.(structures.FluidBoxer)
	if !ok {
		return nil
	}
	return fb.FluidBoxes()
}

// --- powernet.Provider ---

func (w *World) Wires() []powernet.Wire { return w.wires }

func (w *World) Sources() []core.Id {
	var ids []core.Id
	w.reg.Each(func(id core.Id, s structures.Structure) {
		if _, ok := s.(structures.PowerSource); ok {
			ids = append(ids, id)
		}
	})
	return ids
}

func (w *World) Sinks() []core.Id {
	var ids []core.Id
	w.reg.Each(func(id core.Id, s structures.Structure) {
		if _, ok := s.(structures.PowerSink); ok {
			ids = append(ids, id)
		}
	})
	return ids
}

func (w *World) WireReach(id core.Id) float64 {
	s, ok := w.reg.Get(id)
	if !ok {
		return 0
	}
	if wr, ok := s.(structures.WireReacher); ok {
		return wr.WireReach()
	}
	return 0
}
