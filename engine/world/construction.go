package world

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/structures"
)

// notifyConstruction runs the two-pass construction-event dispatch spec.md
// §4.11 describes: every other live structure first hears about the
// change through ConstructionAware, then the structure itself resolves
// (on placement) or clears (on removal) its own back-references through
// ConstructionSelfAware, seeing every other structure at once.
func (w *World) notifyConstruction(id core.Id, s structures.Structure, construct bool) {
	pos := s.Position()
	kind := s.Kind()
	w.reg.Each(func(otherID core.Id, other structures.Structure) {
		if otherID == id {
			return
		}
		if aware, ok := other.(structures.ConstructionAware); ok {
			aware.OnConstruction(id, kind, pos, construct)
		}
	})
	if self, ok := s.(structures.ConstructionSelfAware); ok {
		self.OnConstructionSelf(id, w.reg.Excluding(id), construct)
	}
}
