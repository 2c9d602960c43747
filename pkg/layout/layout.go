// Package layout assigns relative placement hints to the nodes of an edge
// list.
//
// Hints are cosmetic: they tell a Graph::Easy renderer where to put a node
// relative to the first node of the graph (the origin) and never change the
// graph's topology. [Assign] makes one left-to-right pass over the edges.
// Every node label except the origin is hinted the first time it appears;
// each new hint is one step further from the origin than the previous one.
package layout

import "fmt"

// DefaultStep is the offset increment between consecutive hinted nodes.
const DefaultStep = 2

// Edge is a relationship ready for emission: two node labels and the
// relationship type connecting them.
type Edge struct {
	Left  string
	Type  string
	Right string
}

// Hint places a node at Offset cells below Origin.
type Hint struct {
	Origin string
	Offset int
}

// String returns the Graph::Easy attribute clause for the hint.
func (h Hint) String() string {
	return fmt.Sprintf("{ origin: %s; offset: 0,%d; }", h.Origin, h.Offset)
}

// Placement is an edge with the hints of its endpoints. A nil hint means
// the endpoint was seen before or is the origin.
type Placement struct {
	Edge
	LeftHint  *Hint
	RightHint *Hint
}

// Assign annotates edges with hints. A step below one selects [DefaultStep].
func Assign(edges []Edge, step int) []Placement {
	if step < 1 {
		step = DefaultStep
	}

	out := make([]Placement, len(edges))
	if len(edges) == 0 {
		return out
	}

	origin := edges[0].Left
	seen := map[string]struct{}{origin: {}}
	offset := 0
	place := func(label string) *Hint {
		if _, ok := seen[label]; ok {
			return nil
		}
		seen[label] = struct{}{}
		offset += step
		return &Hint{Origin: origin, Offset: offset}
	}

	for i, e := range edges {
		out[i] = Placement{Edge: e, LeftHint: place(e.Left), RightHint: place(e.Right)}
	}
	return out
}

// Plain wraps edges without hints.
func Plain(edges []Edge) []Placement {
	out := make([]Placement, len(edges))
	for i, e := range edges {
		out[i] = Placement{Edge: e}
	}
	return out
}
