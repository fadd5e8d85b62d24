// Package powernet implements electric wire network discovery and
// per-tick power delivery (spec.md §4.6).
package powernet

import "github.com/brackfield/beltworks/engine/core"

// Wire is an unordered connection between two structures.
type Wire struct {
	A, B core.Id
}

// Has reports whether the wire touches id.
func (w Wire) Has(id core.Id) bool {
	return w.A == id || w.B == id
}

// Other returns the endpoint of w that is not id.
func (w Wire) Other(id core.Id) core.Id {
	if w.A == id {
		return w.B
	}
	return w.A
}

// sameWire reports whether two wires connect the same unordered pair.
func sameWire(a, b Wire) bool {
	return (a.A == b.A && a.B == b.B) || (a.A == b.B && a.B == b.A)
}
