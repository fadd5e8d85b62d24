package core

// Id is a generational identifier: a dense slot index paired with the
// generation counter that slot held at insertion time. A stale Id (one
// whose slot has since been reused) fails every lookup.
type Id struct {
	Index uint32
	Gen   uint32
}

// noFree marks the end of the free list.
const noFree = ^uint32(0)

type genSlot[T any] struct {
	gen      uint32
	occupied bool
	value    T
	nextFree uint32 // valid only when !occupied
}

// GenSet is a dense generational arena: Add/Remove are O(1), freed slots
// are reused via an intrusive free list, and every Id is validated against
// the slot's current generation before any access succeeds. This is the
// only mechanism by which a reference into the set remains meaningful
// across later insertions and removals.
type GenSet[T any] struct {
	slots    []genSlot[T]
	freeHead uint32
	count    int
}

// NewGenSet returns an empty generational set.
func NewGenSet[T any]() *GenSet[T] {
	return &GenSet[T]{freeHead: noFree}
}

// Add inserts value, reusing a freed slot if one is available, and returns
// its Id.
func (g *GenSet[T]) Add(value T) Id {
	g.count++
	if g.freeHead != noFree {
		idx := g.freeHead
		slot := &g.slots[idx]
		g.freeHead = slot.nextFree
		slot.occupied = true
		slot.value = value
		return Id{Index: idx, Gen: slot.gen}
	}
	idx := uint32(len(g.slots))
	g.slots = append(g.slots, genSlot[T]{gen: 0, occupied: true, value: value})
	return Id{Index: idx, Gen: 0}
}

// Remove deletes the value at id, returning it, if id is still valid.
// The slot's generation is bumped so any copy of id can no longer resolve.
func (g *GenSet[T]) Remove(id Id) (T, bool) {
	var zero T
	if !g.valid(id) {
		return zero, false
	}
	slot := &g.slots[id.Index]
	value := slot.value
	slot.value = zero
	slot.occupied = false
	slot.gen++
	slot.nextFree = g.freeHead
	g.freeHead = id.Index
	g.count--
	return value, true
}

// Get returns a pointer to the value at id, or false if id is stale or
// the slot is empty. The pointer is only valid until the next Add/Remove.
func (g *GenSet[T]) Get(id Id) (*T, bool) {
	if !g.valid(id) {
		return nil, false
	}
	return &g.slots[id.Index].value, true
}

// Has reports whether id currently resolves to a live value.
func (g *GenSet[T]) Has(id Id) bool {
	return g.valid(id)
}

func (g *GenSet[T]) valid(id Id) bool {
	if id.Index >= uint32(len(g.slots)) {
		return false
	}
	slot := &g.slots[id.Index]
	return slot.occupied && slot.gen == id.Gen
}

// Len returns the number of live entries.
func (g *GenSet[T]) Len() int {
	return g.count
}

// Each calls fn for every live entry in ascending slot-index order. fn may
// mutate the value in place through the pointer but must not Add or
// Remove from g during iteration.
func (g *GenSet[T]) Each(fn func(Id, *T)) {
	for i := range g.slots {
		slot := &g.slots[i]
		if slot.occupied {
			fn(Id{Index: uint32(i), Gen: slot.gen}, &slot.value)
		}
	}
}

// Ids returns the ids of every live entry in ascending slot-index order.
func (g *GenSet[T]) Ids() []Id {
	ids := make([]Id, 0, g.count)
	for i := range g.slots {
		slot := &g.slots[i]
		if slot.occupied {
			ids = append(ids, Id{Index: uint32(i), Gen: slot.gen})
		}
	}
	return ids
}
