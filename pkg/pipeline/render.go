package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/wikigraph/pkg/crawl"
	"github.com/matzehuels/wikigraph/pkg/errors"
	"github.com/matzehuels/wikigraph/pkg/graph"
	wgio "github.com/matzehuels/wikigraph/pkg/io"
	"github.com/matzehuels/wikigraph/pkg/observability"
	"github.com/matzehuels/wikigraph/pkg/render/network"
	"github.com/matzehuels/wikigraph/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
// opts must have passed ValidateForRender.
func Render(ctx context.Context, res *crawl.Result, opts Options) (artifacts map[string][]byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	g := graph.FromResult(res)
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed})

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var rerr error

		switch format {
		case FormatHTML:
			data, rerr = network.Render(g, opts.Page)
		case FormatSVG:
			data, rerr = nodelink.RenderSVG(ctx, dot)
		case FormatDOT:
			data = []byte(dot)
		case FormatJSON:
			data, rerr = wgio.MarshalJSON(res)
		case FormatPNG:
			data, rerr = nodelink.RenderPNG(ctx, dot, opts.Scale)
		case FormatPDF:
			data, rerr = nodelink.RenderPDF(ctx, dot)
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if rerr != nil {
			return nil, fmt.Errorf("render %s: %w", format, rerr)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
