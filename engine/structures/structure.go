// Package structures implements every placeable structure variant
// (spec.md §3-4): the factory/recipe state machine (furnace, electric
// furnace, assembler, ore mine, lab), fluid/power plumbing (pipe,
// underground pipe, water well, offshore pump, boiler, steam engine,
// electric pole), and item transport (belt, splitter, underground belt,
// inserter, chest). Variants share only the narrow Structure interface;
// everything else is an optional capability interface a caller probes
// with a type assertion, the same idiom the standard library uses for
// http.Flusher and similar optional behaviour.
package structures

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/fluidnet"
	"github.com/brackfield/beltworks/engine/inventory"
	"github.com/brackfield/beltworks/engine/items"
	"github.com/brackfield/beltworks/engine/terrain"
)

// Kind identifies a structure variant.
type Kind uint8

const (
	KindOreMine Kind = iota
	KindFurnace
	KindElectricFurnace
	KindAssembler
	KindChest
	KindInserter
	KindTransportBelt
	KindSplitter
	KindUndergroundBelt
	KindPipe
	KindUndergroundPipe
	KindWaterWell
	KindOffshorePump
	KindBoiler
	KindSteamEngine
	KindElectPole
	KindLab
)

// Structure is the minimal capability every placed entity implements.
// Everything else (Ticker, Rotatable, Inputter, ...) is probed with a
// type assertion.
type Structure interface {
	Kind() Kind
	Position() core.Position
}

// Footprinter is implemented by structures occupying more than one tile
// (Splitter's 1x2 footprint). Structures without it occupy a single tile
// at Position().
type Footprinter interface {
	Footprint() []core.Position
}

// Footprint returns every tile s occupies.
func Footprint(s Structure) []core.Position {
	if f, ok := s.(Footprinter); ok {
		return f.Footprint()
	}
	return []core.Position{s.Position()}
}

// Neighbors is the read-mostly view of every other live structure handed
// to a structure during its turn of frame_proc; it never contains the id
// currently holding the mutable turn (spec.md §4.2).
type Neighbors interface {
	Get(id core.Id) (Structure, bool)
	At(pos core.Position) (core.Id, bool)
	Each(fn func(core.Id, Structure))
}

// World is what a structure may do to the wider simulation during its
// turn: read terrain, spawn or query drop items, emit advisory events.
// Structures must not place or remove structures directly (spec.md §9);
// that is reserved for the command queue.
type World interface {
	CellAt(pos core.Position) *terrain.Cell
	SpawnDropItem(kind core.ItemKind, x, y float64) core.Id
	HitCheck(x, y float64, ignore *core.Id) bool
	Emit(evt core.Event)
	// CurrentTick returns the simulation's tick counter, for structures
	// that need to stamp an event or compute an age relative to it.
	CurrentTick() uint64
	// CurrentTechnology returns the input inventory of the technology
	// currently selected for research, or ok=false if none is selected.
	CurrentTechnology() (input inventory.Inventory, ok bool)
	// ItemAt returns an arbitrary loose drop item whose tile is pos, for
	// an inserter preferring a ground item over a structure's output.
	ItemAt(pos core.Position) (core.Id, core.ItemKind, bool)
	// ConsumeItem removes a loose drop item from the world, delivering
	// it to whatever structure called this (an inserter's hand).
	ConsumeItem(id core.Id) (items.DropItem, bool)
}

// TickContext bundles what Tick needs: the structure's own id, the wider
// world, and a view of every other structure.
type TickContext struct {
	Me     core.Id
	World  World
	Others Neighbors
}

// Ticker is implemented by every structure that does something every
// tick (spec.md §4.10 step 3, "frame_proc").
type Ticker interface {
	Tick(ctx TickContext)
}

// Rotatable is implemented by structures whose orientation matters.
// Structures without it reject rotate_structure with ErrInvalidRotation.
type Rotatable interface {
	Rotation() core.Rotation
	SetRotation(r core.Rotation)
}

// Inputter accepts an item kind into the structure (spec.md §3
// "input(item)", "can_input(kind)").
type Inputter interface {
	CanInput(kind core.ItemKind) bool
	Input(kind core.ItemKind) error
}

// Outputter reports what a structure has ready to give up and removes
// one unit of a given kind from its output side.
type Outputter interface {
	CanOutput() inventory.Inventory
	Output(kind core.ItemKind) bool
}

// PowerSource supplies energy to a power network on demand, returning the
// amount actually supplied (<= demand).
type PowerSource interface {
	PowerOutlet(demand float64) float64
}

// PowerSink consumes energy from a power network. Demand reports how
// much more the sink wants this tick; AddEnergy delivers a refill capped
// at the sink's own buffer.
type PowerSink interface {
	PowerDemand() float64
	AddEnergy(amount float64)
}

// WireReacher reports the Chebyshev distance within which this structure
// auto-wires to a compatible source/sink (spec.md §4.6).
type WireReacher interface {
	WireReach() float64
}

// FluidBoxer exposes every fluid port a structure owns, for the fluid
// network's topology and flow passes (spec.md §4.5).
type FluidBoxer interface {
	FluidBoxes() []*fluidnet.Box
}

// Destroyable returns everything a structure should return to the player
// when removed: input + output + any recipe inputs already consumed into
// an in-progress craft (spec.md §4.4's destroy-inventory contract).
type Destroyable interface {
	DestroyInventory() inventory.Inventory
}

// RecipeSelector is implemented by factories whose recipe a player can
// choose explicitly (assemblers; furnaces and mines auto-select instead).
type RecipeSelector interface {
	Recipes() []inventory.Recipe
	SelectRecipe(i int) error
	SelectedRecipe() *inventory.Recipe
}

// ItemResponseKind is the verdict a structure gives a drop item sitting
// on its tile.
type ItemResponseKind uint8

const (
	// RespNone leaves the item where it is.
	RespNone ItemResponseKind = iota
	// RespMove proposes a new pixel position for the item.
	RespMove
	// RespConsume removes the item from the world and delivers it to the
	// structure's own hand or inventory.
	RespConsume
)

// ItemResponse is the result of ItemResponder.ItemResponse.
type ItemResponse struct {
	Kind ItemResponseKind
	X, Y float64
}

// ItemResponder is implemented by structures that interact with drop
// items sitting on their own tile: belts, splitters, underground belts.
type ItemResponder interface {
	ItemResponse(item items.DropItem) ItemResponse
}

// ConstructionAware is notified once for every other live structure when
// a structure is placed or removed (spec.md §4.11).
type ConstructionAware interface {
	OnConstruction(other core.Id, kind Kind, pos core.Position, construct bool)
}

// ConstructionSelfAware is notified about the full set of other
// structures once, right after the ConstructionAware pass (on both
// placement and removal), so it can bind back-references such as an
// inserter's neighbors or an underground belt's partner (spec.md §4.11).
type ConstructionSelfAware interface {
	OnConstructionSelf(me core.Id, others Neighbors, construct bool)
}
