package structures

import (
	"github.com/brackfield/beltworks/engine/config"
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
	"github.com/brackfield/beltworks/engine/items"
)

// TransportBelt moves any drop item sitting on its tile along its
// rotation's axis at BeltSpeed, snapping the cross-axis coordinate to the
// tile midline (spec.md §4.7).
type TransportBelt struct {
	Pos core.Position
	Rot core.Rotation
	cfg *config.Config
}

// NewTransportBelt places a belt at pos facing rot.
func NewTransportBelt(pos core.Position, rot core.Rotation, cfg *config.Config) *TransportBelt {
	return &TransportBelt{Pos: pos, Rot: rot, cfg: cfg}
}

func (b *TransportBelt) Kind() Kind              { return KindTransportBelt }
func (b *TransportBelt) Position() core.Position { return b.Pos }
func (b *TransportBelt) Rotation() core.Rotation  { return b.Rot }
func (b *TransportBelt) SetRotation(r core.Rotation) { b.Rot = r }

// ItemResponse advances item along the belt's facing; the cross-axis
// coordinate snaps to this tile's midline every call.
func (b *TransportBelt) ItemResponse(item items.DropItem) ItemResponse {
	x, y := moveAlongBelt(item, b.Pos, b.Rot, b.cfg)
	return ItemResponse{Kind: RespMove, X: x, Y: y}
}

// midline returns the pixel center of tile p.
func midline(p core.Position, tileSize int) (float64, float64) {
	tile := float64(tileSize)
	return float64(p.X)*tile + tile/2, float64(p.Y)*tile + tile/2
}

// moveAlongBelt is the shared kinematics TransportBelt and Splitter use:
// advance along rot's axis at belt speed, snapping the other axis to
// this tile's midline.
func moveAlongBelt(item items.DropItem, pos core.Position, rot core.Rotation, cfg *config.Config) (float64, float64) {
	d := rot.Delta()
	midX, midY := midline(pos, cfg.TileSize)
	x, y := item.X, item.Y
	if d.Y == 0 {
		y = midY
		x += cfg.BeltSpeed * float64(d.X)
	} else {
		x = midX
		y += cfg.BeltSpeed * float64(d.Y)
	}
	return x, y
}

// crossedMidline reports whether a coordinate moving in dir crossed mid
// between before and after, used to detect the instant an item passes a
// splitter's tile midline.
func crossedMidline(before, after, mid float64, dir int) bool {
	if dir > 0 {
		return before < mid && after >= mid
	}
	if dir < 0 {
		return before > mid && after <= mid
	}
	return false
}

// Splitter is a 1x2-footprint belt that alternates which of its two
// output lanes receives the next item crossing its midline, giving a
// steady stream a 1:1 split over time (spec.md §4.7).
type Splitter struct {
	Pos    core.Position
	Rot    core.Rotation
	Toggle int // 0 or 1: which lane the next crossing item is shifted toward
	cfg    *config.Config
}

// NewSplitter places a splitter at pos, belt flow facing rot; its second
// footprint tile lies one step clockwise of rot (spec.md: "1x2
// footprint").
func NewSplitter(pos core.Position, rot core.Rotation, cfg *config.Config) *Splitter {
	return &Splitter{Pos: pos, Rot: rot, cfg: cfg}
}

func (s *Splitter) Kind() Kind              { return KindSplitter }
func (s *Splitter) Position() core.Position { return s.Pos }
func (s *Splitter) Rotation() core.Rotation  { return s.Rot }
func (s *Splitter) SetRotation(r core.Rotation) { s.Rot = r }

func (s *Splitter) lateral() core.Position { return s.Rot.Next().Delta() }

func (s *Splitter) Footprint() []core.Position {
	return []core.Position{s.Pos, s.Pos.Add(s.lateral())}
}

// ItemResponse advances the item like a plain belt and, at the instant it
// crosses the tile midline along the belt axis, shifts its lateral
// coordinate by one tile toward the side Toggle currently points at, then
// flips Toggle regardless of whether the shifted position is reachable
// (spec.md's Open Question: the toggle is not deferred to a successful
// transfer).
func (s *Splitter) ItemResponse(item items.DropItem) ItemResponse {
	d := s.Rot.Delta()
	midX, midY := midline(s.Pos, s.cfg.TileSize)
	x, y := item.X, item.Y
	var crossing bool
	if d.Y == 0 {
		crossing = crossedMidline(x, x+s.cfg.BeltSpeed*float64(d.X), midX, d.X)
		x += s.cfg.BeltSpeed * float64(d.X)
		y = midY
	} else {
		crossing = crossedMidline(y, y+s.cfg.BeltSpeed*float64(d.Y), midY, d.Y)
		y += s.cfg.BeltSpeed * float64(d.Y)
		x = midX
	}
	if crossing {
		lat := s.lateral()
		tile := float64(s.cfg.TileSize)
		sign := 1.0
		if s.Toggle == 1 {
			sign = -1.0
		}
		x += sign * float64(lat.X) * tile
		y += sign * float64(lat.Y) * tile
		s.Toggle = 1 - s.Toggle
	}
	return ItemResponse{Kind: RespMove, X: x, Y: y}
}

// UndergroundMode distinguishes the entry and exit half of an underground
// belt pair.
type UndergroundMode uint8

const (
	ModeToGround UndergroundMode = iota
	ModeToSurface
)

type undergroundItem struct {
	Age  int
	Kind core.ItemKind
}

// UndergroundBelt is one half of a paired teleport link: the ToGround
// half swallows items and ages them in flight; the matched ToSurface half
// re-emits them once their age exceeds the pair's separation (spec.md
// §4.7). Pairing is resolved by OnConstructionSelf with "nearest wins".
type UndergroundBelt struct {
	Pos     core.Position
	Rot     core.Rotation
	Mode    UndergroundMode
	Partner *core.Id

	inFlight []undergroundItem // ToGround side only
	emerged  []core.ItemKind   // ToSurface side only

	cfg *config.Config
}

// NewUndergroundBelt places one half of an underground pair.
func NewUndergroundBelt(pos core.Position, rot core.Rotation, mode UndergroundMode, cfg *config.Config) *UndergroundBelt {
	return &UndergroundBelt{Pos: pos, Rot: rot, Mode: mode, cfg: cfg}
}

func (u *UndergroundBelt) Kind() Kind              { return KindUndergroundBelt }
func (u *UndergroundBelt) Position() core.Position { return u.Pos }
func (u *UndergroundBelt) Rotation() core.Rotation  { return u.Rot }

// SetRotation sets the new rotation and drops the pairing. It does not
// spill the items in flight; the world's RotateStructure does that through
// Spill right after calling it (spec.md §9).
func (u *UndergroundBelt) SetRotation(r core.Rotation) {
	u.Rot = r
	u.Partner = nil
}

// Spill returns every item still in flight plus every emerged item not
// yet re-emitted, as a slice to be dropped into the world by the caller,
// clearing both internal queues.
// Used when rotation or removal severs an active pairing.
func (u *UndergroundBelt) Spill() []core.ItemKind {
	out := make([]core.ItemKind, 0, len(u.inFlight)+len(u.emerged))
	for _, it := range u.inFlight {
		out = append(out, it.Kind)
	}
	out = append(out, u.emerged...)
	u.inFlight = nil
	u.emerged = nil
	return out
}

func (u *UndergroundBelt) CanInput(kind core.ItemKind) bool {
	return u.Mode == ModeToGround
}

func (u *UndergroundBelt) Input(kind core.ItemKind) error {
	if u.Mode != ModeToGround {
		return core.ErrNotInputtable
	}
	u.inFlight = append(u.inFlight, undergroundItem{Kind: kind})
	return nil
}

// ItemResponse swallows any item sitting on the ToGround tile; the
// ToSurface tile has no pickup behavior of its own (spec.md: "can_input
// only on the ToGround side").
func (u *UndergroundBelt) ItemResponse(items.DropItem) ItemResponse {
	if u.Mode != ModeToGround {
		return ItemResponse{Kind: RespNone}
	}
	return ItemResponse{Kind: RespConsume}
}

func (u *UndergroundBelt) CanOutput() inventory.Inventory {
	inv := inventory.New()
	for _, k := range u.emerged {
		inv.Add(k, 1)
	}
	return inv
}

func (u *UndergroundBelt) Output(kind core.ItemKind) bool {
	for i, k := range u.emerged {
		if k == kind {
			u.emerged = append(u.emerged[:i], u.emerged[i+1:]...)
			return true
		}
	}
	return false
}

// OnConstructionSelf binds Partner to the nearest live UndergroundBelt of
// the opposite mode, same rotation, within UndergroundBeltReach
// (spec.md §4.7, §4.11's "nearest distance wins" tiebreak).
func (u *UndergroundBelt) OnConstructionSelf(me core.Id, others Neighbors, construct bool) {
	if !construct {
		u.Partner = nil
		return
	}
	wantMode := ModeToSurface
	if u.Mode == ModeToSurface {
		wantMode = ModeToGround
	}
	var best core.Id
	bestDist := -1
	others.Each(func(id core.Id, s Structure) {
		cand, ok := s.(*UndergroundBelt)
		if !ok || cand.Mode != wantMode || cand.Rot != u.Rot {
			return
		}
		d := u.Pos.ChebyshevDistance(cand.Pos)
		if d == 0 || d > u.cfg.UndergroundBeltReach {
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

// OnConstruction drops the pairing if the partner was just removed.
func (u *UndergroundBelt) OnConstruction(other core.Id, _ Kind, _ core.Position, construct bool) {
	if !construct && u.Partner != nil && *u.Partner == other {
		u.Partner = nil
	}
}

// Tick ages in-flight items (ToGround) and attempts to step an emerged
// item back into the world (ToSurface).
func (u *UndergroundBelt) Tick(ctx TickContext) {
	if u.Mode == ModeToGround {
		u.tickToGround(ctx)
		return
	}
	u.tickToSurface(ctx)
}

func (u *UndergroundBelt) tickToGround(ctx TickContext) {
	for i := range u.inFlight {
		u.inFlight[i].Age++
	}
	if len(u.inFlight) == 0 || u.Partner == nil {
		return
	}
	partner, ok := ctx.Others.Get(*u.Partner)
	if !ok {
		u.Partner = nil
		return
	}
	surface, ok := partner.(*UndergroundBelt)
	if !ok {
		return
	}
	dist := u.Pos.ChebyshevDistance(surface.Pos)
	threshold := dist * u.cfg.TileSize
	if u.inFlight[0].Age <= threshold {
		return
	}
	item := u.inFlight[0]
	u.inFlight = u.inFlight[1:]
	surface.emerged = append(surface.emerged, item.Kind)
}

func (u *UndergroundBelt) tickToSurface(ctx TickContext) {
	if len(u.emerged) == 0 {
		return
	}
	outPos := u.Pos.Add(u.Rot.Delta())
	cx, cy := midline(outPos, u.cfg.TileSize)
	if ctx.World.HitCheck(cx, cy, nil) {
		return // stalled: exit blocked
	}
	ctx.World.SpawnDropItem(u.emerged[0], cx, cy)
	u.emerged = u.emerged[1:]
}

func (u *UndergroundBelt) DestroyInventory() inventory.Inventory {
	inv := inventory.New()
	for _, k := range u.Spill() {
		inv.Add(k, 1)
	}
	return inv
}
