package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrUnknownNode is returned by [Graph.AddEdge] when an endpoint does not exist.
	ErrUnknownNode = errors.New("unknown node")
)

// Node is a vertex of the link graph, one per article title.
type Node struct {
	ID      string // Article title, also the display label
	Root    bool   // Crawl starting point
	Count   int    // Links found for the title, valid if Counted
	Counted bool   // Whether the crawl recorded a link count
}

// Edge is an undirected link between two titles. A and B are equal for a
// self-loop.
type Edge struct {
	A, B string
}

// Graph is an undirected simple graph with insertion-ordered nodes and
// neighbor lists. The zero value is not usable; use [New].
type Graph struct {
	nodes map[string]*Node
	order []string
	adj   map[string][]string
	has   map[string]map[string]bool
	edges int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string][]string),
		has:   make(map[string]map[string]bool),
	}
}

// AddNode adds n, or updates the attributes of an existing node with the
// same ID while keeping its position.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if existing, ok := g.nodes[n.ID]; ok {
		*existing = n
		return nil
	}
	g.nodes[n.ID] = &n
	g.order = append(g.order, n.ID)
	return nil
}

// ensure adds a bare node for id if it does not exist yet.
func (g *Graph) ensure(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = &Node{ID: id}
		g.order = append(g.order, id)
	}
}

// AddEdge connects a and b. Adding an edge that already exists, in either
// direction, is a no-op.
func (g *Graph) AddEdge(a, b string) error {
	if _, ok := g.nodes[a]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[b]; !ok {
		return ErrUnknownNode
	}
	if g.has[a][b] {
		return nil
	}
	g.link(a, b)
	if a != b {
		g.link(b, a)
	}
	g.edges++
	return nil
}

func (g *Graph) link(from, to string) {
	if g.has[from] == nil {
		g.has[from] = make(map[string]bool)
	}
	g.has[from][to] = true
	g.adj[from] = append(g.adj[from], to)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. The pointers refer to the
// graph's own nodes.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// Edges returns every edge once. Edges are grouped by the endpoint that was
// inserted first, in node order, then by neighbor insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	seen := make(map[string]bool, len(g.order))
	for _, id := range g.order {
		for _, nb := range g.adj[id] {
			if !seen[nb] {
				out = append(out, Edge{A: id, B: nb})
			}
		}
		seen[id] = true
	}
	return out
}

// Neighbors returns the IDs adjacent to id in insertion order.
// A self-loop lists id itself once.
func (g *Graph) Neighbors(id string) []string { return slices.Clone(g.adj[id]) }

// Degree returns the number of edge endpoints at id; a self-loop counts twice.
func (g *Graph) Degree(id string) int {
	d := len(g.adj[id])
	if g.has[id][id] {
		d++
	}
	return d
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b string) bool { return g.has[a][b] }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Root returns the root node, if one is flagged.
func (g *Graph) Root() (*Node, bool) {
	for _, id := range g.order {
		if n := g.nodes[id]; n.Root {
			return n, true
		}
	}
	return nil, false
}
