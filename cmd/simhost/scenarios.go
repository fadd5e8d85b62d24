package main

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/brackfield/beltworks/engine/world"
)

// scenario seeds w with a starting layout of structures.
type scenario func(w *world.World)

// scenarios mirrors original_source's select_scenario: a small set of
// named starting layouts a caller picks by name instead of always
// building the same demo line.
var scenarios = map[string]scenario{
	"default":         seedDefaultScenario,
	"transport_bench": seedTransportBench,
	"electric_bench":  seedElectricBench,
}

func place(w *world.World, kind structures.Kind, x, y int, rot core.Rotation) core.Id {
	id, _ := w.PlaceStructure(kind, core.Position{X: x, Y: y}, rot)
	return id
}

// seedDefaultScenario places a minimal ore-mine -> belt -> furnace ->
// inserter -> chest production line, the smallest loop that exercises mining, transport,
// smelting, and storage in one run.
func seedDefaultScenario(w *world.World) {
	place(w, structures.KindOreMine, 0, 0, core.Right)
	place(w, structures.KindTransportBelt, 1, 0, core.Right)
	place(w, structures.KindTransportBelt, 2, 0, core.Right)
	place(w, structures.KindFurnace, 3, 0, core.Right)
	place(w, structures.KindInserter, 4, 0, core.Right)
	place(w, structures.KindChest, 5, 0, core.Right)

	w.SelectTechnology(0)
}

// seedTransportBench traces belts around a large square loop, for
// exercising belt-to-belt handoff and midline tracking at scale
// (original_source/src/scenarios.rs: transport_bench).
func seedTransportBench(w *world.World) {
	seedDefaultScenario(w)

	for x := 11; x <= 100; x++ {
		place(w, structures.KindTransportBelt, x, 10, core.Left)
	}
	for x := 10; x <= 99; x++ {
		place(w, structures.KindTransportBelt, x, 100, core.Right)
	}
	for y := 10; y <= 99; y++ {
		place(w, structures.KindTransportBelt, 10, y, core.Bottom)
	}
	for y := 11; y <= 100; y++ {
		place(w, structures.KindTransportBelt, 100, y, core.Top)
	}
}

// seedElectricBench alternates assemblers and elect poles along all four
// sides of a large square, exercising long-distance power relay through a
// chain of poles rather than a single direct wire
// (original_source/src/scenarios.rs: electric_bench; spec.md §8's "two
// steam engines ... connected via poles to one assembler" scenario).
func seedElectricBench(w *world.World) {
	seedDefaultScenario(w)

	alternate := func(x, y int) {
		if (x+y)%2 == 0 {
			place(w, structures.KindAssembler, x, y, core.Right)
		} else {
			place(w, structures.KindElectPole, x, y, core.Right)
		}
	}
	for x := 10; x <= 100; x++ {
		alternate(x, 10)
		alternate(x, 100)
	}
	for y := 11; y <= 99; y++ {
		alternate(10, y)
		alternate(100, y)
	}
}
