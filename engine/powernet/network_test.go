package powernet

import (
	"testing"

	"github.com/brackfield/beltworks/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a minimal in-memory Provider for exercising Discover and
// AutoConnect without a full world.
type fakeProvider struct {
	wires    []Wire
	sources  []core.Id
	sinks    []core.Id
	reach    map[core.Id]float64
	position map[core.Id]core.Position
}

func (f *fakeProvider) Wires() []Wire           { return f.wires }
func (f *fakeProvider) Sources() []core.Id      { return f.sources }
func (f *fakeProvider) Sinks() []core.Id        { return f.sinks }
func (f *fakeProvider) WireReach(id core.Id) float64 { return f.reach[id] }
func (f *fakeProvider) PositionOf(id core.Id) core.Position { return f.position[id] }

func id(i uint32) core.Id { return core.Id{Index: i} }

func TestDiscoverRequiresBothSourceAndSink(t *testing.T) {
	p := &fakeProvider{
		sources: []core.Id{id(1)},
		wires:   []Wire{{A: id(1), B: id(2)}},
	}
	nets := Discover(p)
	assert.Empty(t, nets, "a component with only a source and no sink delivers nothing")
}

func TestDiscoverOneNetworkAcrossAWire(t *testing.T) {
	p := &fakeProvider{
		sources: []core.Id{id(5)},
		sinks:   []core.Id{id(1), id(3)},
		wires:   []Wire{{A: id(5), B: id(1)}, {A: id(1), B: id(3)}},
	}
	nets := Discover(p)
	require.Len(t, nets, 1)
	require.Len(t, nets[0].Sources, 1)
	assert.Equal(t, id(5), nets[0].Sources[0])
	require.Len(t, nets[0].Sinks, 2)
	assert.Equal(t, id(1), nets[0].Sinks[0], "sinks must be sorted in ascending id order")
	assert.Equal(t, id(3), nets[0].Sinks[1])
}

func TestDiscoverSeparatesDisjointComponents(t *testing.T) {
	p := &fakeProvider{
		sources: []core.Id{id(1), id(10)},
		sinks:   []core.Id{id(2), id(11)},
		wires:   []Wire{{A: id(1), B: id(2)}, {A: id(10), B: id(11)}},
	}
	nets := Discover(p)
	require.Len(t, nets, 2)
}

func TestAutoConnectWiresWithinReach(t *testing.T) {
	p := &fakeProvider{
		sources:  []core.Id{id(1)},
		sinks:    []core.Id{id(2)},
		reach:    map[core.Id]float64{id(1): 3, id(2): 3},
		position: map[core.Id]core.Position{id(1): {X: 0, Y: 0}, id(2): {X: 2, Y: 0}},
	}
	var added []Wire
	AutoConnect(p, func(a, b core.Id) { added = append(added, Wire{A: a, B: b}) })
	require.Len(t, added, 1)
	assert.True(t, added[0].Has(id(1)))
	assert.True(t, added[0].Has(id(2)))
}

func TestAutoConnectSkipsOutOfReachAndExisting(t *testing.T) {
	p := &fakeProvider{
		sources:  []core.Id{id(1)},
		sinks:    []core.Id{id(2)},
		reach:    map[core.Id]float64{id(1): 1, id(2): 1},
		position: map[core.Id]core.Position{id(1): {X: 0, Y: 0}, id(2): {X: 5, Y: 0}},
	}
	var added []Wire
	AutoConnect(p, func(a, b core.Id) { added = append(added, Wire{A: a, B: b}) })
	assert.Empty(t, added, "pair outside min(reach) must not be wired")

	p2 := &fakeProvider{
		sources:  []core.Id{id(1)},
		sinks:    []core.Id{id(2)},
		wires:    []Wire{{A: id(2), B: id(1)}},
		reach:    map[core.Id]float64{id(1): 3, id(2): 3},
		position: map[core.Id]core.Position{id(1): {X: 0, Y: 0}, id(2): {X: 1, Y: 0}},
	}
	AutoConnect(p2, func(a, b core.Id) { added = append(added, Wire{A: a, B: b}) })
	assert.Empty(t, added, "an already wired pair must not be wired again")
}
