// Package pipeline provides the crawl → render pipeline of wikigraph.
//
// This package ties the crawler and the renderers together so the CLI
// commands and the HTTP server behave the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Crawl: Expand the link graph of an article level by level
//  2. Render: Generate artifacts (HTML, SVG, DOT, JSON, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Title:    "Go_(programming_language)",
//	    MaxDepth: 2,
//	    Formats:  []string{"html", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
//
// Run individual stages:
//
//	res, err := runner.Crawl(ctx, opts)
//	artifacts, err := runner.Render(ctx, res, opts)
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikigraph/pkg/crawl"
	"github.com/matzehuels/wikigraph/pkg/errors"
	"github.com/matzehuels/wikigraph/pkg/graph"
	"github.com/matzehuels/wikigraph/pkg/integrations/wikipedia"
	"github.com/matzehuels/wikigraph/pkg/render/network"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultMaxDepth is the number of levels crawled.
	DefaultMaxDepth = crawl.DefaultMaxDepth

	// DefaultMaxLinks is the number of links kept per article.
	DefaultMaxLinks = crawl.DefaultMaxLinks

	// MaxDepthLimit bounds MaxDepth. Without deduplication the request count
	// grows as MaxLinks^MaxDepth.
	MaxDepthLimit = 10

	// MaxLinksLimit bounds MaxLinks.
	MaxLinksLimit = 5000

	// MaxConcurrency bounds in-flight requests per level.
	MaxConcurrency = 256

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// DefaultFormats is the output of a crawl when no format is requested.
var DefaultFormats = []string{FormatHTML}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Crawl options
	Title       string        `json:"title"`
	MaxDepth    int           `json:"max_depth,omitempty"`
	MaxLinks    int           `json:"max_links"`
	Language    string        `json:"language,omitempty"`
	APIURL      string        `json:"api_url,omitempty"`
	UserAgent   string        `json:"user_agent,omitempty"`
	Timeout     time.Duration `json:"timeout,omitempty"`
	Concurrency int           `json:"concurrency,omitempty"`
	RateLimit   float64       `json:"rate_limit,omitempty"`
	CacheTTL    time.Duration `json:"cache_ttl,omitempty"`
	Refresh     bool          `json:"refresh,omitempty"`

	// Render options
	Formats  []string        `json:"formats,omitempty"`
	Page     network.Options `json:"-"`
	Detailed bool            `json:"detailed,omitempty"` // Counts in SVG/DOT labels
	Scale    float64         `json:"scale,omitempty"`    // PNG scale

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Crawl is the crawl outcome.
	Crawl *crawl.Result

	// Graph is the link graph rendered from Crawl.
	Graph *graph.Graph

	// GraphHash is the content hash of the exported crawl.
	GraphHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Titles     int // Expanded titles
	NodeCount  int
	EdgeCount  int
	CrawlTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames lists the supported output formats in display order.
func FormatNames() []string {
	return []string{FormatHTML, FormatSVG, FormatDOT, FormatJSON, FormatPNG, FormatPDF}
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCrawl(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCrawl checks crawl fields and applies their defaults.
// MaxDepth 0 selects the default; a negative MaxLinks does too.
func (o *Options) ValidateForCrawl() error {
	if err := errors.ValidateTitle(o.Title); err != nil {
		return err
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxLinks < 0 {
		o.MaxLinks = DefaultMaxLinks
	}
	if err := errors.ValidateLimit("max depth", o.MaxDepth, 1, MaxDepthLimit); err != nil {
		return err
	}
	if err := errors.ValidateLimit("max links", o.MaxLinks, 0, MaxLinksLimit); err != nil {
		return err
	}
	if err := errors.ValidateLimit("concurrency", o.Concurrency, 0, MaxConcurrency); err != nil {
		return err
	}
	if o.RateLimit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "rate limit must not be negative, got %g", o.RateLimit)
	}
	if o.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must not be negative, got %s", o.Timeout)
	}
	if o.APIURL != "" {
		if err := errors.ValidateURL(o.APIURL); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// ValidateForRender checks render fields and applies their defaults.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Page == (network.Options{}) {
		o.Page = network.DefaultOptions()
	}
	o.setLogger()
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// CrawlOptions returns the builder options.
func (o *Options) CrawlOptions() crawl.Options {
	return crawl.Options{MaxDepth: o.MaxDepth, MaxLinks: o.MaxLinks, Logger: o.Logger}
}

// ClientOptions returns the API client options.
func (o *Options) ClientOptions() wikipedia.Options {
	return wikipedia.Options{
		APIURL:      o.APIURL,
		Language:    o.Language,
		UserAgent:   o.UserAgent,
		Timeout:     o.Timeout,
		RateLimit:   o.RateLimit,
		Concurrency: o.Concurrency,
		CacheTTL:    o.CacheTTL,
		Refresh:     o.Refresh,
	}
}

// String summarizes the crawl parameters for logs.
func (o *Options) String() string {
	return fmt.Sprintf("%s (depth %d, links %d)", o.Title, o.MaxDepth, o.MaxLinks)
}
