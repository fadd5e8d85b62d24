// Package inventory holds the item multiset and recipe types shared by
// every factory-capable structure.
package inventory

import "github.com/brackfield/beltworks/engine/core"

// Inventory is a multiset of item kinds. A zero count always removes the
// key rather than leaving a stale zero entry behind.
type Inventory map[core.ItemKind]int

// New returns an empty inventory.
func New() Inventory {
	return make(Inventory)
}

// Add increases the count of kind by n (n may be negative; see Remove for
// the checked variant). A resulting count of zero deletes the key.
func (inv Inventory) Add(kind core.ItemKind, n int) {
	if n == 0 {
		return
	}
	inv[kind] += n
	if inv[kind] <= 0 {
		delete(inv, kind)
	}
}

// Count returns the current count of kind (0 if absent).
func (inv Inventory) Count(kind core.ItemKind) int {
	return inv[kind]
}

// Has reports whether inv holds at least n of kind.
func (inv Inventory) Has(kind core.ItemKind, n int) bool {
	return inv[kind] >= n
}

// Remove deducts n of kind if inv holds at least that many, returning
// whether the deduction happened.
func (inv Inventory) Remove(kind core.ItemKind, n int) bool {
	if !inv.Has(kind, n) {
		return false
	}
	inv.Add(kind, -n)
	return true
}

// HasAll reports whether inv satisfies every entry of need.
func (inv Inventory) HasAll(need Inventory) bool {
	for kind, n := range need {
		if !inv.Has(kind, n) {
			return false
		}
	}
	return true
}

// RemoveAll deducts every entry of need, assuming HasAll(need) already
// holds; it is the caller's responsibility to check that first.
func (inv Inventory) RemoveAll(need Inventory) {
	for kind, n := range need {
		inv.Add(kind, -n)
	}
}

// AddAll merges every entry of other into inv.
func (inv Inventory) AddAll(other Inventory) {
	for kind, n := range other {
		inv.Add(kind, n)
	}
}

// Merge returns a new inventory holding the sum of inv and other, used by
// the destroy-inventory contract to combine input, output, and
// in-progress recipe inputs without mutating any of the sources.
func Merge(invs ...Inventory) Inventory {
	out := New()
	for _, inv := range invs {
		out.AddAll(inv)
	}
	return out
}

// Clone returns an independent copy of inv.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
