package structures_test

import (
	"testing"

	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/stretchr/testify/assert"
)

func TestElectPoleIsBothPowerSourceAndSinkWithWidenedWireReach(t *testing.T) {
	p := structures.NewElectPole(core.Position{X: 3, Y: 4}, 100)

	assert.Equal(t, structures.KindElectPole, p.Kind())
	assert.Equal(t, 5.0, p.WireReach())

	var s structures.Structure = p
	_, isSource := s.(structures.PowerSource)
	_, isSink := s.(structures.PowerSink)
	assert.True(t, isSource, "a pole relays power by being both a source and a sink")
	assert.True(t, isSink)
}

func TestElectPoleRelaysPowerThroughItsOwnBuffer(t *testing.T) {
	p := structures.NewElectPole(core.Position{X: 0, Y: 0}, 100)

	assert.Equal(t, 100.0, p.PowerDemand(), "an empty relay buffer wants a full refill")
	p.AddEnergy(40)
	assert.Equal(t, 60.0, p.PowerDemand())

	supplied := p.PowerOutlet(25)
	assert.Equal(t, 25.0, supplied)

	supplied = p.PowerOutlet(1000)
	assert.Equal(t, 15.0, supplied, "the outlet never supplies more than the buffer holds")
	assert.Equal(t, 0.0, p.Energy.Value)
}
