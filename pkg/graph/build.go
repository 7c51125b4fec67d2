package graph

import "github.com/matzehuels/wikigraph/pkg/crawl"

// FromResult builds the link graph of a crawl.
func FromResult(res *crawl.Result) *Graph {
	g := New()
	titles := res.Links.Titles()
	for _, t := range titles {
		g.ensure(t)
	}
	for _, t := range titles {
		children, _ := res.Links.Children(t)
		for _, c := range children {
			g.ensure(c)
			_ = g.AddEdge(t, c)
		}
	}

	// The root is always present, even when its fetch failed.
	if res.Root != "" {
		g.ensure(res.Root)
		g.nodes[res.Root].Root = true
	}
	for id, n := range res.Counts {
		if node, ok := g.nodes[id]; ok {
			node.Count = n
			node.Counted = true
		}
	}
	return g
}
