package core

import "errors"

// Sentinel error kinds returned by command methods. Wrap with fmt.Errorf's
// %w verb to add context; callers compare with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrOutOfBounds           = errors.New("out of bounds")
	ErrOccupied              = errors.New("tile occupied")
	ErrInvalidRotation       = errors.New("structure does not support rotation")
	ErrRecipeIndexOutOfRange = errors.New("recipe index out of range")
	ErrNotInputtable         = errors.New("structure rejects this item kind")
	ErrNoOutput              = errors.New("structure has nothing to output")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInternal              = errors.New("internal invariant violated")
)
