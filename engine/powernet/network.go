package powernet

import (
	"sort"

	"github.com/brackfield/beltworks/engine/core"
)

// Provider is the view of the structure registry the power network needs.
// Implemented by the world package.
type Provider interface {
	Wires() []Wire
	// Sources and Sinks return every power-source / power-sink structure
	// id, in ascending id order.
	Sources() []core.Id
	Sinks() []core.Id
	WireReach(id core.Id) float64
	PositionOf(id core.Id) core.Position
}

// Network is a connected component of the wire graph that contains at
// least one source and one sink.
type Network struct {
	Wires   []Wire
	Sources []core.Id
	Sinks   []core.Id
}

// Discover recomputes every power network from scratch via a flood fill
// over the wire graph seeded from every source and sink. A connected
// component only becomes a Network if it contains at least one source
// and at least one sink; components with only one side never deliver
// power and are dropped.
func Discover(p Provider) []Network {
	adjacency := make(map[core.Id][]Wire)
	for _, w := range p.Wires() {
		adjacency[w.A] = append(adjacency[w.A], w)
		adjacency[w.B] = append(adjacency[w.B], w)
	}

	isSource := make(map[core.Id]bool)
	isSink := make(map[core.Id]bool)
	var seeds []core.Id
	for _, id := range p.Sources() {
		isSource[id] = true
		seeds = append(seeds, id)
	}
	for _, id := range p.Sinks() {
		isSink[id] = true
		seeds = append(seeds, id)
	}

	visited := make(map[core.Id]bool)
	var networks []Network
	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		var component []core.Id
		var wireSet []Wire
		queue := []core.Id{seed}
		visited[seed] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			component = append(component, id)
			for _, w := range adjacency[id] {
				if !containsWire(wireSet, w) {
					wireSet = append(wireSet, w)
				}
				other := w.Other(id)
				if !visited[other] {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}
		net := Network{Wires: wireSet}
		for _, id := range component {
			if isSource[id] {
				net.Sources = append(net.Sources, id)
			}
			if isSink[id] {
				net.Sinks = append(net.Sinks, id)
			}
		}
		// BFS visits components in discovery order, not id order; sort so
		// callers can rely on "scan sources/sinks in ascending id order"
		// (spec.md §4.6) regardless of wire-graph topology.
		sort.Slice(net.Sources, func(i, j int) bool { return net.Sources[i].Index < net.Sources[j].Index })
		sort.Slice(net.Sinks, func(i, j int) bool { return net.Sinks[i].Index < net.Sinks[j].Index })
		if len(net.Sources) > 0 && len(net.Sinks) > 0 {
			networks = append(networks, net)
		}
	}
	return networks
}

func containsWire(wires []Wire, w Wire) bool {
	for _, existing := range wires {
		if sameWire(existing, w) {
			return true
		}
	}
	return false
}

// AutoConnect scans every existing (source, sink) pair and adds a wire
// through addWire for any pair within Chebyshev distance of
// min(wire_reach_a, wire_reach_b) that isn't already wired (spec.md
// §4.6's placement-triggered auto-connection rule).
func AutoConnect(p Provider, addWire func(a, b core.Id)) {
	existing := p.Wires()
	has := func(a, b core.Id) bool {
		for _, w := range existing {
			if (w.A == a && w.B == b) || (w.A == b && w.B == a) {
				return true
			}
		}
		return false
	}
	for _, src := range p.Sources() {
		for _, sink := range p.Sinks() {
			if src == sink || has(src, sink) {
				continue
			}
			reach := p.WireReach(src)
			if sinkReach := p.WireReach(sink); sinkReach < reach {
				reach = sinkReach
			}
			dist := p.PositionOf(src).ChebyshevDistance(p.PositionOf(sink))
			if float64(dist) <= reach {
				addWire(src, sink)
				existing = append(existing, Wire{A: src, B: sink})
			}
		}
	}
}
