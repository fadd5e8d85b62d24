package structures

import "github.com/brackfield/beltworks/engine/core"

// electPoleWireReach is the pole's wire auto-connection radius, wider
// than an ordinary source/sink's reach (spec.md §6: "5 for poles").
const electPoleWireReach = 5

// ElectPole is both a power source and a power sink over a small buffer
// of its own: AutoConnect wires it to every source/sink within reach on
// either side, so a chain of poles relays power across a distance no
// single wire could span (original_source/src/elect_pole.rs: power_sink
// and power_source both return true, power_outlet draws from the pole's
// own energy buffer).
type ElectPole struct {
	Pos    core.Position
	Energy core.Energy
}

// NewElectPole places a pole at pos with a relay buffer capped at
// maxEnergy.
func NewElectPole(pos core.Position, maxEnergy float64) *ElectPole {
	return &ElectPole{Pos: pos, Energy: core.Energy{Max: maxEnergy}}
}

func (p *ElectPole) Kind() Kind              { return KindElectPole }
func (p *ElectPole) Position() core.Position { return p.Pos }
func (p *ElectPole) WireReach() float64      { return electPoleWireReach }

// PowerDemand reports how much the pole's relay buffer wants refilled
// this tick; a pole never consumes power itself, it only stores what it
// hasn't yet passed along.
func (p *ElectPole) PowerDemand() float64 { return p.Energy.Max - p.Energy.Value }

// AddEnergy refills the pole's relay buffer, per PowerSink.
func (p *ElectPole) AddEnergy(amount float64) { p.Energy.Add(amount) }

// PowerOutlet supplies up to demand from the pole's relay buffer,
// returning the amount actually supplied, per PowerSource.
func (p *ElectPole) PowerOutlet(demand float64) float64 {
	return p.Energy.Draw(demand)
}
