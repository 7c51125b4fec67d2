// Package graph provides the undirected link graph rendered from a crawl.
//
// # Construction
//
// [FromResult] turns a crawl's adjacency map into a [Graph] with the rules of
// an undirected simple graph built from a dict of lists:
//
//   - nodes appear in first-seen order: every expanded title in crawl order,
//     then each child title the first time it is seen
//   - every title/child pair becomes an edge
//   - A→B and B→A fold into a single edge, as do repeated pairs
//   - self-links are kept as self-loops
//
// The crawl root is flagged with [Node.Root]. Titles that have a link count
// carry it in [Node.Count] with [Node.Counted] set; children that were never
// expanded have no count.
//
// # Traversal
//
//	g := graph.FromResult(res)
//	for _, n := range g.Nodes() {
//	    fmt.Println(n.ID, g.Degree(n.ID))
//	}
//
// Iteration order is deterministic: [Graph.Nodes] follows insertion order and
// [Graph.Edges] reports each edge once, from the endpoint inserted first.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Concurrent reads are fine.
package graph
