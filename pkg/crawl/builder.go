package crawl

import (
	"context"
	"time"

	"github.com/matzehuels/wikigraph/pkg/errors"
	"github.com/matzehuels/wikigraph/pkg/integrations/wikipedia"
	"github.com/matzehuels/wikigraph/pkg/observability"
)

// Fetcher fetches the link listings of a batch of titles.
// result[i] must belong to titles[i]; nil marks a failed fetch.
type Fetcher interface {
	FetchAll(ctx context.Context, titles []string) []*wikipedia.Response
}

// FetcherFunc adapts a function to [Fetcher].
type FetcherFunc func(ctx context.Context, titles []string) []*wikipedia.Response

// FetchAll calls f.
func (f FetcherFunc) FetchAll(ctx context.Context, titles []string) []*wikipedia.Response {
	return f(ctx, titles)
}

// Builder runs depth-bounded crawls. A Builder holds no crawl state and may
// run several crawls, one at a time or concurrently.
type Builder struct {
	fetcher Fetcher
	opts    Options
}

// NewBuilder creates a Builder using fetcher and opts.WithDefaults.
func NewBuilder(fetcher Fetcher, opts Options) *Builder {
	return &Builder{fetcher: fetcher, opts: opts.WithDefaults()}
}

// Options returns the effective options.
func (b *Builder) Options() Options { return b.opts }

// Build crawls from start and returns the accumulated link graph.
// It returns an error only if ctx is cancelled; the partial result is
// returned alongside.
func (b *Builder) Build(ctx context.Context, start string) (*Result, error) {
	res := newResult(start, b.opts)
	hooks := observability.Crawl()
	hooks.OnCrawlStart(ctx, start, b.opts.MaxDepth, b.opts.MaxLinks)

	frontier := []string{start}
	var err error
	for depth := 1; depth <= b.opts.MaxDepth; depth++ {
		if err = ctx.Err(); err != nil {
			break
		}
		frontier, err = b.level(ctx, res, depth, frontier)
		if err != nil {
			break
		}
	}

	res.Duration = time.Since(res.Started)
	hooks.OnCrawlComplete(ctx, start, res.Links.Len(), res.Duration, err)
	return res, err
}

// level expands one frontier and returns the next one.
func (b *Builder) level(ctx context.Context, res *Result, depth int, frontier []string) ([]string, error) {
	logger := b.opts.Logger
	hooks := observability.Crawl()

	logger.Debug("crawling level", "depth", depth, "titles", len(frontier))
	hooks.OnLevelStart(ctx, depth, len(frontier))
	start := time.Now()

	var responses []*wikipedia.Response
	if len(frontier) > 0 {
		responses = b.fetcher.FetchAll(ctx, frontier)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lvl := Level{Depth: depth, Frontier: len(frontier)}
	var next []string
	for i, title := range frontier {
		var resp *wikipedia.Response
		if i < len(responses) {
			resp = responses[i]
		}
		children, found, ok, err := b.extract(title, resp)
		if err != nil {
			logger.Error("unable to build level", "depth", depth, "title", title, "err", err)
			lvl.Aborted = true
			break
		}
		if ok {
			lvl.Fetched++
			lvl.Links += found
			res.Counts[title] += found
		} else {
			lvl.Failed++
		}
		next = append(next, children...)
		res.Links.Append(title, children)
	}

	lvl.Duration = time.Since(start)
	res.Levels = append(res.Levels, lvl)
	logger.Debug("links fetched", "depth", depth, "links", lvl.Links)
	hooks.OnLevelComplete(ctx, depth, lvl.Links, lvl.Failed, lvl.Duration)
	return next, nil
}

// extract returns the truncated children of title, the number of
// namespace-0 links found before truncation, and whether resp carried a
// links listing.
func (b *Builder) extract(title string, resp *wikipedia.Response) ([]string, int, bool, error) {
	page, ok := resp.LinkListing()
	if !ok {
		b.opts.Logger.Warn("response contains no links", "title", title)
		return nil, 0, false, nil
	}
	titles, err := page.ArticleLinks()
	if err != nil {
		return nil, 0, false, errors.Wrap(errors.ErrCodeMalformedResponse, err, "extract links of %q", title)
	}
	found := len(titles)
	if len(titles) > b.opts.MaxLinks {
		titles = titles[:b.opts.MaxLinks]
	}
	return titles, found, true, nil
}
