package world

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
	"github.com/brackfield/beltworks/engine/items"
	"github.com/brackfield/beltworks/engine/powernet"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/brackfield/beltworks/engine/terrain"
)

// StructureQueryAt returns the id and structure occupying pos, if any.
func (w *World) StructureQueryAt(pos core.Position) (core.Id, structures.Structure, bool) {
	id, ok := w.reg.At(pos)
	if !ok {
		return core.Id{}, nil, false
	}
	s, ok := w.reg.Get(id)
	return id, s, ok
}

// Structure returns the structure at id, if live.
func (w *World) Structure(id core.Id) (structures.Structure, bool) {
	return w.reg.Get(id)
}

// TileAt returns the terrain cell at pos, or nil if out of bounds or this
// world has no terrain attached.
func (w *World) TileAt(pos core.Position) *terrain.Cell {
	return w.CellAt(pos)
}

// ItemQueryAt returns an arbitrary loose drop item whose tile is pos.
func (w *World) ItemQueryAt(pos core.Position) (core.Id, items.DropItem, bool) {
	var (
		found core.Id
		item  items.DropItem
		ok    bool
	)
	w.items.Each(func(id core.Id, it *items.DropItem) {
		if ok {
			return
		}
		if tileOf(it.X, w.cfg.TileSize) == pos.X && tileOf(it.Y, w.cfg.TileSize) == pos.Y {
			found, item, ok = id, *it, true
		}
	})
	return found, item, ok
}

// InventoryOf returns the named inventory of a structure. Recognized
// "which" values: "input", "output", "fuel" (furnaces, ore mines, the
// boiler); a chest only ever has one inventory, returned for either
// "input" or "output".
func (w *World) InventoryOf(id core.Id, which string) (inventory.Inventory, bool) {
	s, ok := w.reg.Get(id)
	if !ok {
		return nil, false
	}
	switch v := s.(type) {
	case *structures.Furnace:
		return factoryInventory(&v.Factory, &v.Burner, which)
	case *structures.ElectricFurnace:
		return factoryInventory(&v.Factory, nil, which)
	case *structures.Assembler:
		return factoryInventory(&v.Factory, nil, which)
	case *structures.Lab:
		return factoryInventory(&v.Factory, nil, which)
	case *structures.OreMine:
		return factoryInventory(&v.Factory, &v.Burner, which)
	case *structures.Chest:
		return v.Inv, true
	case *structures.Boiler:
		if which == "fuel" {
			return v.Fuel, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func factoryInventory(f *structures.Factory, b *structures.Burner, which string) (inventory.Inventory, bool) {
	switch which {
	case "input":
		return f.InputInv, true
	case "output":
		return f.OutputInv, true
	case "fuel":
		if b == nil {
			return nil, false
		}
		return b.Fuel, true
	default:
		return nil, false
	}
}

// PowerNetworks returns the most recently discovered set of power
// networks (rebuilt lazily whenever a wire or power-capable structure
// changed since the last Tick).
func (w *World) PowerNetworks() []powernet.Network {
	return w.networks
}

// WireList returns every manually- or auto-connected power wire.
func (w *World) WireList() []powernet.Wire {
	return w.wires
}
