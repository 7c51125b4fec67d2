// Package render provides visualization rendering for crawl link graphs.
//
// # Overview
//
// Two renderers turn a [graph.Graph] into an artifact:
//
//   - [network]: a self-contained interactive HTML page with a physics
//     simulation, the primary output of a crawl
//   - [nodelink]: Graphviz DOT source and static SVG
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [graph.Graph]: github.com/matzehuels/wikigraph/pkg/graph.Graph
// [network]: github.com/matzehuels/wikigraph/pkg/render/network
// [nodelink]: github.com/matzehuels/wikigraph/pkg/render/nodelink
package render
