package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wikigraph/pkg/observability"
	"github.com/matzehuels/wikigraph/pkg/pipeline"
)

// crawlFlags holds the flag values shared by crawl-like commands.
type crawlFlags struct {
	depth       int
	links       int
	language    string
	apiURL      string
	userAgent   string
	timeout     time.Duration
	concurrency int
	rateLimit   float64
	cache       string
	refresh     bool
}

func (f *crawlFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.depth, "depth", "d", pipeline.DefaultMaxDepth, "number of link levels to crawl")
	cmd.Flags().IntVarP(&f.links, "links", "l", pipeline.DefaultMaxLinks, "links kept per article")
	cmd.Flags().StringVar(&f.language, "language", "", "wikipedia language edition (default en)")
	cmd.Flags().StringVar(&f.apiURL, "api-url", "", "MediaWiki api.php endpoint (overrides --language)")
	cmd.Flags().StringVar(&f.userAgent, "user-agent", "", "User-Agent header sent to the API")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "per-request timeout (default 10s)")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "max concurrent requests per level (0 = unbounded)")
	cmd.Flags().Float64Var(&f.rateLimit, "rate-limit", 0, "max requests per second (0 = unlimited)")
	cmd.Flags().StringVar(&f.cache, "cache", "", "response cache: none (default), file, redis")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached responses and fetch again")
	_ = cmd.RegisterFlagCompletionFunc("cache", completeCacheBackends)
}

// apply overrides opts and cc with the flags the user set explicitly.
func (f *crawlFlags) apply(cmd *cobra.Command, opts *pipeline.Options, cc *CacheConfig) {
	set := cmd.Flags().Changed
	if set("depth") {
		opts.MaxDepth = f.depth
	}
	if set("links") {
		opts.MaxLinks = f.links
	}
	if set("language") {
		opts.Language = f.language
	}
	if set("api-url") {
		opts.APIURL = f.apiURL
	}
	if set("user-agent") {
		opts.UserAgent = f.userAgent
	}
	if set("timeout") {
		opts.Timeout = f.timeout
	}
	if set("concurrency") {
		opts.Concurrency = f.concurrency
	}
	if set("rate-limit") {
		opts.RateLimit = f.rateLimit
	}
	if set("cache") {
		cc.Backend = f.cache
	}
	opts.Refresh = f.refresh
}

// renderFlags holds the flag values shared by commands that write artifacts.
type renderFlags struct {
	output   string
	formats  string
	title    string
	detailed bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output base path, one file per format is written as <base>.<format>")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): html (default), svg, dot, json, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&f.title, "title", "", "HTML page title (default: the root article)")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "show link counts in SVG/DOT labels")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	if cmd.Flags().Changed("format") {
		opts.Formats = pipeline.ParseFormats(f.formats)
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}
	opts.Detailed = f.detailed
	if f.title != "" {
		opts.Page.Title = f.title
	}
	return nil
}

// crawlCommand creates the crawl command.
func (c *CLI) crawlCommand() *cobra.Command {
	var (
		cf crawlFlags
		rf renderFlags
	)

	cmd := &cobra.Command{
		Use:   "crawl <title>",
		Short: "Crawl the link graph of a Wikipedia article",
		Long: `Crawl the link graph of a Wikipedia article.

Starting from the given article, crawl fetches the outgoing article links
(namespace 0) of every title in the current level concurrently, keeps the
first --links of each and repeats for --depth levels. Titles are not
deduplicated: an article reached twice is fetched twice and its links are
appended again.

The graph is written as <title>.html by default; use -f to pick other
formats and -o to choose the base path.`,
		Example: `  wikigraph crawl "Go (programming language)"
  wikigraph crawl Graph_theory -d 2 -l 5 -f html,json -o out/graph
  wikigraph crawl Berlin --language de --cache file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			opts := cfg.pipelineOptions()
			cc := cfg.Cache
			cf.apply(cmd, &opts, &cc)
			if err := rf.apply(cmd, &opts); err != nil {
				return err
			}
			opts.Title = args[0]
			if !cmd.Flags().Changed("title") {
				opts.Page.Title = args[0]
			}

			base := rf.output
			if base == "" {
				base = outputBase(opts.Title)
			}
			return c.runCrawl(cmd.Context(), opts, cc, base)
		},
	}

	cf.register(cmd)
	rf.register(cmd)

	return cmd
}

// runCrawl executes the pipeline and writes its artifacts.
func (c *CLI) runCrawl(ctx context.Context, opts pipeline.Options, cc CacheConfig, base string) error {
	runner, err := c.newRunner(ctx, cc)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Crawling %s...", opts.Title))
	observability.SetCrawlHooks(&crawlProgress{spinner: spinner, root: opts.Title})
	defer observability.SetCrawlHooks(observability.NoopCrawlHooks{})
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Crawl failed")
		return err
	}
	spinner.Stop()

	prog := newProgress(c.Logger)
	formats := opts.Formats
	if len(formats) == 0 {
		formats = pipeline.DefaultFormats
	}
	paths, err := writeArtifacts(result.Artifacts, formats, base)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(paths)))

	failed := failedTitles(result)
	printSuccess("Crawled %s", StyleHighlight.Render(opts.Title))
	printStats(result.Stats.Titles, result.Stats.NodeCount, result.Stats.EdgeCount, failed)
	if failed > 0 {
		printWarning("%d titles returned no links and were kept as leaves", failed)
	}
	for _, p := range paths {
		printFile(p)
	}
	if slices.Contains(formats, pipeline.FormatJSON) {
		printNextStep("Browse the crawl", fmt.Sprintf("%s browse %s", appName, base+".json"))
	}
	return nil
}

func failedTitles(r *pipeline.Result) int {
	n := 0
	for _, lvl := range r.Crawl.Levels {
		n += lvl.Failed
	}
	return n
}

// crawlProgress reports crawl levels on the spinner.
type crawlProgress struct {
	observability.NoopCrawlHooks
	spinner *Spinner
	root    string
	depth   int
}

func (p *crawlProgress) OnCrawlStart(_ context.Context, root string, maxDepth, _ int) {
	p.root, p.depth = root, maxDepth
}

func (p *crawlProgress) OnLevelStart(_ context.Context, depth, frontier int) {
	p.spinner.Update(fmt.Sprintf("Crawling %s: level %d/%d, %d titles...", p.root, depth, p.depth, frontier))
}
