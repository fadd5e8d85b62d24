// Package commands defines the player-issued mutations the world applies
// at the start of every tick (spec.md §6, §4.10 step 1), plus a binary
// wire format and an append-only log for replay-based testing.
package commands

import (
	"encoding/binary"
	"io"

	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/structures"
)

// Type identifies which command a Command carries.
type Type uint8

const (
	PlaceStructure Type = iota
	RemoveStructure
	RotateStructure
	SetRecipe
	MoveItem
	AddWire
	RemoveWire
)

// Command is a single deterministic world mutation, tagged with the tick
// it was applied on so a recorded log can be replayed against a fresh
// world and reach the same state (spec.md §8's save/replay round-trip).
// Not every field is meaningful for every Type; see the constructors.
type Command struct {
	Tick uint64
	Type Type

	// PlaceStructure
	Kind structures.Kind
	Pos  core.Position
	Rot  core.Rotation

	// RemoveStructure, RotateStructure, SetRecipe
	ID core.Id

	// SetRecipe
	RecipeIndex int

	// MoveItem
	FromID   core.Id
	ToID     core.Id
	ItemKind core.ItemKind
	Count    int

	// AddWire, RemoveWire
	WireA core.Id
	WireB core.Id
}

// Place builds a PlaceStructure command.
func Place(tick uint64, kind structures.Kind, pos core.Position, rot core.Rotation) Command {
	return Command{Tick: tick, Type: PlaceStructure, Kind: kind, Pos: pos, Rot: rot}
}

// Remove builds a RemoveStructure command.
func Remove(tick uint64, id core.Id) Command {
	return Command{Tick: tick, Type: RemoveStructure, ID: id}
}

// Rotate builds a RotateStructure command.
func Rotate(tick uint64, id core.Id) Command {
	return Command{Tick: tick, Type: RotateStructure, ID: id}
}

// SelectRecipe builds a SetRecipe command.
func SelectRecipe(tick uint64, id core.Id, recipeIndex int) Command {
	return Command{Tick: tick, Type: SetRecipe, ID: id, RecipeIndex: recipeIndex}
}

// MoveItemCmd builds a MoveItem command (chest-to-chest or hand-to-chest
// transfers the host UI performs outside the belt network).
func MoveItemCmd(tick uint64, from, to core.Id, kind core.ItemKind, count int) Command {
	return Command{Tick: tick, Type: MoveItem, FromID: from, ToID: to, ItemKind: kind, Count: count}
}

// AddWireCmd builds an AddWire command.
func AddWireCmd(tick uint64, a, b core.Id) Command {
	return Command{Tick: tick, Type: AddWire, WireA: a, WireB: b}
}

// RemoveWireCmd builds a RemoveWire command.
func RemoveWireCmd(tick uint64, a, b core.Id) Command {
	return Command{Tick: tick, Type: RemoveWire, WireA: a, WireB: b}
}

func writeID(w io.Writer, id core.Id) error {
	if err := binary.Write(w, binary.LittleEndian, id.Index); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, id.Gen)
}

func readID(r io.Reader) (core.Id, error) {
	var id core.Id
	if err := binary.Read(r, binary.LittleEndian, &id.Index); err != nil {
		return core.Id{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &id.Gen); err != nil {
		return core.Id{}, err
	}
	return id, nil
}

// Encode writes c to w in a fixed-width binary layout.
func (c *Command) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, c.Tick); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.Type); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.Kind); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(c.Pos.X)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(c.Pos.Y)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.Rot); err != nil {
		return err
	}
	if err := writeID(w, c.ID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(c.RecipeIndex)); err != nil {
		return err
	}
	if err := writeID(w, c.FromID); err != nil {
		return err
	}
	if err := writeID(w, c.ToID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, c.ItemKind); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(c.Count)); err != nil {
		return err
	}
	if err := writeID(w, c.WireA); err != nil {
		return err
	}
	return writeID(w, c.WireB)
}

// Decode reads a Command from r, the inverse of Encode.
func (c *Command) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &c.Tick); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.Type); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.Kind); err != nil {
		return err
	}
	var x, y int32
	if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
		return err
	}
	c.Pos = core.Position{X: int(x), Y: int(y)}
	if err := binary.Read(r, binary.LittleEndian, &c.Rot); err != nil {
		return err
	}
	id, err := readID(r)
	if err != nil {
		return err
	}
	c.ID = id
	var recipeIdx int32
	if err := binary.Read(r, binary.LittleEndian, &recipeIdx); err != nil {
		return err
	}
	c.RecipeIndex = int(recipeIdx)
	if c.FromID, err = readID(r); err != nil {
		return err
	}
	if c.ToID, err = readID(r); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.ItemKind); err != nil {
		return err
	}
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}
	c.Count = int(count)
	if c.WireA, err = readID(r); err != nil {
		return err
	}
	c.WireB, err = readID(r)
	return err
}
