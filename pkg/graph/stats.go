package graph

import "slices"

// Stats summarizes the shape of a graph.
type Stats struct {
	Nodes     int
	Edges     int
	SelfLoops int
	Leaves    int // Nodes of degree 1
	MaxDegree int
	Hub       string // A node of maximal degree, first in node order
}

// Summarize computes graph statistics.
func Summarize(g *Graph) Stats {
	s := Stats{Nodes: g.NodeCount(), Edges: g.EdgeCount()}
	for _, id := range g.order {
		d := g.Degree(id)
		if g.has[id][id] {
			s.SelfLoops++
		}
		if d == 1 {
			s.Leaves++
		}
		if d > s.MaxDegree {
			s.MaxDegree, s.Hub = d, id
		}
	}
	return s
}

// TopByCount returns up to n counted nodes ordered by descending link count,
// ties broken by node order.
func TopByCount(g *Graph, n int) []*Node {
	var counted []*Node
	for _, node := range g.Nodes() {
		if node.Counted {
			counted = append(counted, node)
		}
	}
	slices.SortStableFunc(counted, func(a, b *Node) int { return b.Count - a.Count })
	if len(counted) > n {
		counted = counted[:n]
	}
	return counted
}
