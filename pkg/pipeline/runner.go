package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikigraph/pkg/cache"
	"github.com/matzehuels/wikigraph/pkg/crawl"
	"github.com/matzehuels/wikigraph/pkg/graph"
	"github.com/matzehuels/wikigraph/pkg/integrations/wikipedia"
	wgio "github.com/matzehuels/wikigraph/pkg/io"
)

// Runner executes pipeline stages.
//
// The Runner keeps no crawl state; multiple goroutines can use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	// Fetcher replaces the Wikipedia client when set.
	Fetcher crawl.Fetcher
}

// NewRunner creates a runner with the given response cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete crawl → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	crawlStart := time.Now()
	res, err := r.Crawl(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("crawl: %w", err)
	}
	result.Crawl = res
	result.Stats.CrawlTime = time.Since(crawlStart)
	result.Stats.Titles = res.Links.Len()

	result.Graph = graph.FromResult(res)
	result.Stats.NodeCount = result.Graph.NodeCount()
	result.Stats.EdgeCount = result.Graph.EdgeCount()
	if data, err := wgio.MarshalJSON(res); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Debug("crawled link graph",
		"titles", result.Stats.Titles,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.CrawlTime.Round(time.Millisecond))

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime.Round(time.Millisecond))

	return result, nil
}

// Crawl runs the depth-bounded crawl described by opts.
// It fails only on invalid options or cancellation.
func (r *Runner) Crawl(ctx context.Context, opts Options) (*crawl.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForCrawl(); err != nil {
		return nil, err
	}

	fetcher := r.Fetcher
	if fetcher == nil {
		client, err := wikipedia.NewClient(r.Cache, opts.ClientOptions())
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("using API endpoint", "url", client.Endpoint())
		fetcher = wikipedia.NewLinkFetcher(client, opts.Concurrency, opts.Logger)
	}

	return crawl.NewBuilder(fetcher, opts.CrawlOptions()).Build(ctx, opts.Title)
}

// Render generates artifacts for a crawl result in the requested formats.
func (r *Runner) Render(ctx context.Context, res *crawl.Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return Render(ctx, res, opts)
}

// applyLogger makes the runner's logger the default for opts.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
