package structures

import (
	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/fluidnet"
	"github.com/brackfield/beltworks/engine/inventory"
)

// Pipe is a passive fluid conduit: a single box that connects on any
// side and allows flow in both directions.
type Pipe struct {
	Pos core.Position
	Box fluidnet.Box
}

// NewPipe places an empty pipe segment at pos.
func NewPipe(pos core.Position, maxAmount float64) *Pipe {
	return &Pipe{Pos: pos, Box: fluidnet.Box{MaxAmount: maxAmount, InputEnabled: true, OutputEnabled: true}}
}

func (p *Pipe) Kind() Kind              { return KindPipe }
func (p *Pipe) Position() core.Position { return p.Pos }
func (p *Pipe) FluidBoxes() []*fluidnet.Box { return []*fluidnet.Box{&p.Box} }

// UndergroundPipe pairs two entities across a buried span and
// equalizes their boxes directly every tick, bypassing the spatial
// topology pass (spec.md §4.7's underground mechanism generalized to
// fluid per spec.md §6's UNDERGROUND_REACH=10 for pipes).
type UndergroundPipe struct {
	Pos     core.Position
	Rot     core.Rotation
	Box     fluidnet.Box
	Partner *core.Id
	cfg     *config.Config
}

// NewUndergroundPipe places one half of a buried pipe pair.
func NewUndergroundPipe(pos core.Position, rot core.Rotation, maxAmount float64, cfg *config.Config) *UndergroundPipe {
	return &UndergroundPipe{
		Pos: pos, Rot: rot,
		Box: fluidnet.Box{MaxAmount: maxAmount, InputEnabled: true, OutputEnabled: true},
		cfg: cfg,
	}
}

func (u *UndergroundPipe) Kind() Kind                  { return KindUndergroundPipe }
func (u *UndergroundPipe) Position() core.Position     { return u.Pos }
func (u *UndergroundPipe) Rotation() core.Rotation      { return u.Rot }
func (u *UndergroundPipe) SetRotation(r core.Rotation) { u.Rot = r; u.Partner = nil }
func (u *UndergroundPipe) FluidBoxes() []*fluidnet.Box { return []*fluidnet.Box{&u.Box} }

// OnConstructionSelf binds Partner to the nearest compatible
// UndergroundPipe within UndergroundPipeReach, "nearest wins".
func (u *UndergroundPipe) OnConstructionSelf(me core.Id, others Neighbors, construct bool) {
	if !construct {
		u.Partner = nil
		return
	}
	var best core.Id
	bestDist := -1
	others.Each(func(id core.Id, s Structure) {
		cand, ok := s.(*UndergroundPipe)
		if !ok || cand.Rot != u.Rot {
			return
		}
		d := u.Pos.ChebyshevDistance(cand.Pos)
		if d == 0 || d > u.cfg.UndergroundPipeReach {
			return
		}
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = id
		}
	})
	if bestDist != -1 {
		u.Partner = &best
	}
}

func (u *UndergroundPipe) OnConstruction(other core.Id, _ Kind, _ core.Position, construct bool) {
	if !construct && u.Partner != nil && *u.Partner == other {
		u.Partner = nil
	}
}

// Tick equalizes this pipe's box with its partner's box once per tick,
// run only from the lower-indexed side of the pair so the relaxation
// step isn't applied twice.
func (u *UndergroundPipe) Tick(ctx TickContext) {
	if u.Partner == nil || ctx.Me.Index >= u.Partner.Index {
		return
	}
	partner, ok := ctx.Others.Get(*u.Partner)
	if !ok {
		u.Partner = nil
		return
	}
	other, ok := partner.(*UndergroundPipe)
	if !ok {
		return
	}
	relaxation := fluidnet.DefaultRelaxation
	if u.cfg != nil {
		relaxation = u.cfg.FluidRelaxation
	}
	fluidnet.Equalize(&u.Box, &other.Box, relaxation)
}

// waterWellFillRate is the fixed amount of water a WaterWell adds to its
// box per tick.
const waterWellFillRate = 5.0

// WaterWell is an unconditional water source: it fills its own box every
// tick up to MaxAmount, independent of terrain (spec.md §4.5's Boiler/
// SteamEngine/Pump plumbing needs a generator; a real deployment gets its
// water from OffshorePump, but a scenario seed may place a WaterWell
// directly for testing without requiring a water tile).
type WaterWell struct {
	Pos core.Position
	Box fluidnet.Box
}

// NewWaterWell places a water well at pos.
func NewWaterWell(pos core.Position, maxAmount float64) *WaterWell {
	return &WaterWell{Pos: pos, Box: fluidnet.Box{MaxAmount: maxAmount, OutputEnabled: true}}
}

func (w *WaterWell) Kind() Kind              { return KindWaterWell }
func (w *WaterWell) Position() core.Position { return w.Pos }
func (w *WaterWell) FluidBoxes() []*fluidnet.Box { return []*fluidnet.Box{&w.Box} }

func (w *WaterWell) Tick(ctx TickContext) {
	w.Box.SetAmount(w.Box.Amount+waterWellFillRate, core.FluidWater)
}

// offshorePumpFillRate is the fixed amount of water an OffshorePump adds
// to its box per tick while its intake tile is water.
const offshorePumpFillRate = 20.0

// OffshorePump draws water from the water tile behind its facing into
// its own box (spec.md §4.5).
type OffshorePump struct {
	Pos core.Position
	Rot core.Rotation
	Box fluidnet.Box
}

// NewOffshorePump places a pump at pos, intake facing rot.Opposite().
func NewOffshorePump(pos core.Position, rot core.Rotation, maxAmount float64) *OffshorePump {
	return &OffshorePump{Pos: pos, Rot: rot, Box: fluidnet.Box{MaxAmount: maxAmount, OutputEnabled: true}}
}

func (o *OffshorePump) Kind() Kind                  { return KindOffshorePump }
func (o *OffshorePump) Position() core.Position     { return o.Pos }
func (o *OffshorePump) Rotation() core.Rotation      { return o.Rot }
func (o *OffshorePump) SetRotation(r core.Rotation) { o.Rot = r }
func (o *OffshorePump) FluidBoxes() []*fluidnet.Box { return []*fluidnet.Box{&o.Box} }

func (o *OffshorePump) Tick(ctx TickContext) {
	intake := o.Pos.Add(o.Rot.Opposite().Delta())
	cell := ctx.World.CellAt(intake)
	if cell == nil || !cell.Water {
		return
	}
	o.Box.SetAmount(o.Box.Amount+offshorePumpFillRate, core.FluidWater)
}

// boilerPowerCost is the kJ drawn per unit of conversion progress; one
// full unit of progress converts FluidPerProgress amount of water to
// steam (spec.md §4.5).
const boilerPowerCost = 1.0

// Boiler burns coal to convert water into steam (spec.md §4.5, §3).
type Boiler struct {
	Pos   core.Position
	Rot   core.Rotation
	Water fluidnet.Box
	Steam fluidnet.Box
	Burner
	Energy core.Energy
	cfg    *config.Config
}

// NewBoiler places a coal-burning boiler at pos.
func NewBoiler(pos core.Position, rot core.Rotation, waterMax, steamMax float64, cfg *config.Config) *Boiler {
	return &Boiler{
		Pos:    pos,
		Rot:    rot,
		Water:  fluidnet.Box{MaxAmount: waterMax, InputEnabled: true},
		Steam:  fluidnet.Box{MaxAmount: steamMax, OutputEnabled: true},
		Burner: NewBurner(),
		Energy: core.Energy{Max: cfg.CoalPower},
		cfg:    cfg,
	}
}

func (b *Boiler) Kind() Kind              { return KindBoiler }
func (b *Boiler) Position() core.Position { return b.Pos }
func (b *Boiler) Rotation() core.Rotation  { return b.Rot }
func (b *Boiler) SetRotation(r core.Rotation) { b.Rot = r }

func (b *Boiler) FluidBoxes() []*fluidnet.Box { return []*fluidnet.Box{&b.Water, &b.Steam} }

func (b *Boiler) CanInput(kind core.ItemKind) bool { return kind == core.ItemCoal }

func (b *Boiler) Input(kind core.ItemKind) error {
	if kind != core.ItemCoal {
		return core.ErrNotInputtable
	}
	b.Fuel.Add(core.ItemCoal, 1)
	return nil
}

func (b *Boiler) Tick(ctx TickContext) {
	b.Refuel(&b.Energy, b.cfg)
	if b.Water.Amount <= 0 || b.Energy.Value <= 0 {
		return
	}
	step := b.Energy.Value / boilerPowerCost
	if step > 1 {
		step = 1
	}
	amount := step * b.cfg.FluidPerProgress
	amount = min(amount, b.Water.Amount, b.Steam.MaxAmount-b.Steam.Amount)
	if amount <= 0 {
		return
	}
	b.Water.SetAmount(b.Water.Amount-amount, core.FluidWater)
	b.Steam.SetAmount(b.Steam.Amount+amount, core.FluidSteam)
	b.Energy.Draw(amount / b.cfg.FluidPerProgress * boilerPowerCost)
}

func (b *Boiler) DestroyInventory() inventory.Inventory {
	return b.Fuel.Clone()
}

// steamEnergyPerUnit is the Energy gained per unit of Steam consumed.
const steamEnergyPerUnit = 0.5

// SteamEngine consumes steam from its fluid box and converts it into
// Energy it supplies to a power network as a PowerSource (spec.md §4.5,
// §3: "steam engines convert consumed steam into Energy").
type SteamEngine struct {
	Pos    core.Position
	Rot    core.Rotation
	Steam  fluidnet.Box
	Energy core.Energy
}

// NewSteamEngine places a steam engine at pos.
func NewSteamEngine(pos core.Position, rot core.Rotation, steamMax, energyMax float64) *SteamEngine {
	return &SteamEngine{
		Pos:    pos,
		Rot:    rot,
		Steam:  fluidnet.Box{MaxAmount: steamMax, InputEnabled: true},
		Energy: core.Energy{Max: energyMax},
	}
}

func (s *SteamEngine) Kind() Kind              { return KindSteamEngine }
func (s *SteamEngine) Position() core.Position { return s.Pos }
func (s *SteamEngine) Rotation() core.Rotation  { return s.Rot }
func (s *SteamEngine) SetRotation(r core.Rotation) { s.Rot = r }
func (s *SteamEngine) FluidBoxes() []*fluidnet.Box { return []*fluidnet.Box{&s.Steam} }
func (s *SteamEngine) WireReach() float64           { return 3 }

func (s *SteamEngine) Tick(ctx TickContext) {
	if s.Steam.Amount <= 0 {
		return
	}
	room := s.Energy.Max - s.Energy.Value
	convert := min(s.Steam.Amount, room/steamEnergyPerUnit)
	if convert <= 0 {
		return
	}
	s.Steam.SetAmount(s.Steam.Amount-convert, core.FluidSteam)
	s.Energy.Add(convert * steamEnergyPerUnit)
}

// PowerOutlet supplies up to demand from the engine's buffer, returning
// the amount actually supplied (spec.md §4.6).
func (s *SteamEngine) PowerOutlet(demand float64) float64 {
	return s.Energy.Draw(min(demand, s.Energy.Value))
}
