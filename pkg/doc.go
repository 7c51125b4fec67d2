// Package pkg provides the libraries behind wikigraph.
//
// # Overview
//
// wikigraph crawls the outgoing article links of a Wikipedia page level by
// level and renders the resulting link graph. The pkg directory is organized
// as:
//
//  1. [integrations] - HTTP client and the MediaWiki link fetcher
//  2. [crawl] - Depth-bounded crawl producing the adjacency and count maps
//  3. [graph] - Undirected link graph built from a crawl
//  4. [render] - Interactive HTML, Graphviz DOT/SVG, PNG and PDF output
//  5. [io] - JSON export and import of crawl results
//  6. [pipeline] - Orchestration (crawl → render)
//  7. [cache] - Optional response cache (file, Redis)
//
// # Architecture
//
// The typical data flow:
//
//	MediaWiki API (action=parse, prop=links)
//	         ↓
//	    [integrations/wikipedia] (fetch a level concurrently)
//	         ↓
//	    [crawl] (filter namespace 0, count, truncate, append)
//	         ↓
//	    [graph] (undirected graph, root flagged)
//	         ↓
//	    [render/network], [render/nodelink]
//	         ↓
//	    HTML/SVG/DOT/PNG/PDF/JSON output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Title:    "Graph theory",
//	    MaxDepth: 2,
//	    MaxLinks: 5,
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("graph.html", result.Artifacts["html"], 0o644)
//
// Or drive the crawler directly with a custom fetcher:
//
//	b := crawl.NewBuilder(fetcher, crawl.Options{MaxDepth: 3, MaxLinks: 10})
//	res, err := b.Build(ctx, "Graph theory")
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/integrations
// [crawl]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/crawl
// [graph]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/cache
// [integrations/wikipedia]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/integrations/wikipedia
// [render/network]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/render/network
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/wikigraph/pkg/render/nodelink
package pkg
