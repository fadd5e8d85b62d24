package world

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
)

// Technology is a lab-researchable unlock: Steps units of research, each
// consuming one Input per completed craft (spec.md §4.4's Lab-specific
// addition).
type Technology struct {
	Name  string
	Input inventory.Inventory
	Steps int
}

// DefaultTechnologies is the fixed research tree a new World starts with.
var DefaultTechnologies = []Technology{
	{Name: "automation", Input: inventory.Inventory{core.ItemIronOre: 1, core.ItemGear: 1}, Steps: 10},
	{Name: "logistics", Input: inventory.Inventory{core.ItemCopperWire: 2}, Steps: 15},
	{Name: "electronics", Input: inventory.Inventory{core.ItemCircuit: 1}, Steps: 20},
}

// researchState tracks which technology is selected, how many units of
// research have completed toward it, and which technologies have already
// unlocked.
type researchState struct {
	technologies []Technology
	selected     int // index into technologies, -1 for none
	progress     int
	unlocked     map[string]bool
}

func newResearchState() researchState {
	return researchState{
		technologies: DefaultTechnologies,
		selected:     -1,
		unlocked:     make(map[string]bool),
	}
}

// currentInput returns the selected technology's recipe input, or
// ok=false if nothing is selected or it's already unlocked.
func (r *researchState) currentInput() (inventory.Inventory, bool) {
	if r.selected < 0 || r.selected >= len(r.technologies) {
		return nil, false
	}
	tech := r.technologies[r.selected]
	if r.unlocked[tech.Name] {
		return nil, false
	}
	return tech.Input, true
}

// advance increments progress toward the selected technology by one
// completed craft, unlocking it once Steps is reached.
func (r *researchState) advance() {
	if r.selected < 0 || r.selected >= len(r.technologies) {
		return
	}
	tech := r.technologies[r.selected]
	if r.unlocked[tech.Name] {
		return
	}
	r.progress++
	if r.progress >= tech.Steps {
		r.unlocked[tech.Name] = true
		r.progress = 0
	}
}

// selectByIndex chooses which technology the lab network researches next.
// It has no effect if the index is out of range or already unlocked.
func (r *researchState) selectByIndex(i int) {
	if i < 0 || i >= len(r.technologies) || r.unlocked[r.technologies[i].Name] {
		return
	}
	r.selected = i
	r.progress = 0
}

// ResearchState is the read-only snapshot the research_state query
// returns.
type ResearchState struct {
	Selected string
	Progress int
	Steps    int
	Unlocked []string
}

func (w *World) onResearchEvent(_ core.Event) {
	w.research.advance()
}

// SelectTechnology chooses which technology the lab network researches
// next.
func (w *World) SelectTechnology(i int) {
	w.research.selectByIndex(i)
}

// ResearchQuery returns a snapshot of the current research state.
func (w *World) ResearchQuery() ResearchState {
	rs := ResearchState{Progress: w.research.progress}
	if w.research.selected >= 0 && w.research.selected < len(w.research.technologies) {
		tech := w.research.technologies[w.research.selected]
		rs.Selected = tech.Name
		rs.Steps = tech.Steps
	}
	for _, tech := range w.research.technologies {
		if w.research.unlocked[tech.Name] {
			rs.Unlocked = append(rs.Unlocked, tech.Name)
		}
	}
	return rs
}
