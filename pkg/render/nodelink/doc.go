// Package nodelink renders link graphs as static node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render it to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The generated DOT describes an undirected graph laid out with neato, so
// the picture resembles the force-directed HTML view. The root node is
// filled red. With [Options.Detailed], labels carry the link count of every
// expanded title.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion goes through the render package and
// requires librsvg (rsvg-convert).
package nodelink
