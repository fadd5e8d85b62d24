package fluidnet

import (
	"testing"

	"github.com/brackfield/beltworks/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a minimal in-memory Provider for testing the network
// algorithm in isolation from the structure registry.
type fakeProvider struct {
	pos   map[core.Id]core.Position
	posOf map[core.Position]core.Id
	boxes map[core.Id][]*Box
	order []core.Id
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		pos:   make(map[core.Id]core.Position),
		posOf: make(map[core.Position]core.Id),
		boxes: make(map[core.Id][]*Box),
	}
}

func (f *fakeProvider) place(id core.Id, pos core.Position, boxes ...*Box) {
	f.pos[id] = pos
	f.posOf[pos] = id
	f.boxes[id] = boxes
	f.order = append(f.order, id)
}

func (f *fakeProvider) FluidStructureIds() []core.Id { return f.order }
func (f *fakeProvider) PositionOf(id core.Id) core.Position { return f.pos[id] }
func (f *fakeProvider) StructureAt(pos core.Position) (core.Id, bool) {
	id, ok := f.posOf[pos]
	return id, ok
}
func (f *fakeProvider) Boxes(id core.Id) []*Box { return f.boxes[id] }

func water() core.FluidKind { return core.FluidWater }

func TestTopologyConnectsAdjacentBoxes(t *testing.T) {
	p := newFakeProvider()
	k := water()
	a := &Box{Kind: &k, Amount: 50, MaxAmount: 100, InputEnabled: true, OutputEnabled: true}
	b := &Box{Kind: &k, Amount: 0, MaxAmount: 100, InputEnabled: true, OutputEnabled: true}
	p.place(core.Id{Index: 0}, core.Position{X: 0, Y: 0}, a)
	p.place(core.Id{Index: 1}, core.Position{X: 1, Y: 0}, b)

	topology(p)

	idB := core.Id{Index: 1}
	require.NotNil(t, a.ConnectTo[core.Right])
	assert.Equal(t, idB, *a.ConnectTo[core.Right])
}

func TestFlowEqualizesTowardPressureBalance(t *testing.T) {
	p := newFakeProvider()
	k := water()
	full := &Box{Kind: &k, Amount: 100, MaxAmount: 100, InputEnabled: true, OutputEnabled: true}
	empty := &Box{MaxAmount: 100, InputEnabled: true, OutputEnabled: true}
	idA := core.Id{Index: 0}
	idB := core.Id{Index: 1}
	p.place(idA, core.Position{X: 0, Y: 0}, full)
	p.place(idB, core.Position{X: 1, Y: 0}, empty)

	for i := 0; i < 200; i++ {
		Step(p, DefaultRelaxation)
	}

	assert.InDelta(t, 50, full.Amount, 1.0)
	assert.InDelta(t, 50, empty.Amount, 1.0)
	assert.NotNil(t, empty.Kind)
}

func TestFlowNeverMixesDifferentKinds(t *testing.T) {
	p := newFakeProvider()
	water := core.FluidWater
	steam := core.FluidSteam
	w := &Box{Kind: &water, Amount: 50, MaxAmount: 100, InputEnabled: true, OutputEnabled: true}
	s := &Box{Kind: &steam, Amount: 50, MaxAmount: 100, InputEnabled: true, OutputEnabled: true}
	p.place(core.Id{Index: 0}, core.Position{X: 0, Y: 0}, w)
	p.place(core.Id{Index: 1}, core.Position{X: 1, Y: 0}, s)

	for i := 0; i < 10; i++ {
		Step(p, DefaultRelaxation)
	}

	assert.Equal(t, 50.0, w.Amount)
	assert.Equal(t, 50.0, s.Amount)
}

func TestFlowRespectsFilter(t *testing.T) {
	p := newFakeProvider()
	k := water()
	steamKind := core.FluidSteam
	source := &Box{Kind: &k, Amount: 100, MaxAmount: 100, OutputEnabled: true}
	sink := &Box{MaxAmount: 100, InputEnabled: true, Filter: &steamKind}
	p.place(core.Id{Index: 0}, core.Position{X: 0, Y: 0}, source)
	p.place(core.Id{Index: 1}, core.Position{X: 1, Y: 0}, sink)

	for i := 0; i < 20; i++ {
		Step(p, DefaultRelaxation)
	}

	assert.Equal(t, 0.0, sink.Amount, "sink filtered to steam must reject water")
}

func TestBoxInvariantAmountImpliesKind(t *testing.T) {
	b := &Box{MaxAmount: 50}
	b.SetAmount(10, core.FluidWater)
	require.NotNil(t, b.Kind)
	b.SetAmount(0, core.FluidWater)
	assert.Nil(t, b.Kind, "clearing to zero amount should not force a kind")
}

func TestBoxAmountClampedToMax(t *testing.T) {
	b := &Box{MaxAmount: 10}
	b.SetAmount(999, core.FluidWater)
	assert.Equal(t, 10.0, b.Amount)
}
