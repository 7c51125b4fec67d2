package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wikigraph/pkg/crawl"
	wgio "github.com/matzehuels/wikigraph/pkg/io"
	"github.com/matzehuels/wikigraph/pkg/pipeline"
)

// renderCommand creates the render command for re-rendering a saved crawl.
func (c *CLI) renderCommand() *cobra.Command {
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render a saved crawl without crawling again",
		Long: `Render a saved crawl without crawling again.

The input is the JSON written by 'wikigraph crawl -f json'. Output files are
written next to the input unless -o is given.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("json"),
		RunE:              func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			opts := cfg.pipelineOptions()
			if err := rf.apply(cmd, &opts); err != nil {
				return err
			}

			base := rf.output
			if base == "" {
				base = stripExt(args[0])
			}
			return c.runRender(cmd.Context(), args[0], base, opts, cmd.Flags().Changed("title"))
		},
	}

	rf.register(cmd)

	return cmd
}

// runRender loads the crawl and writes the requested formats.
func (c *CLI) runRender(ctx context.Context, input, base string, opts pipeline.Options, customTitle bool) error {
	res, err := loadCrawl(input)
	if err != nil {
		return err
	}
	if !customTitle {
		opts.Page.Title = res.Root
	}

	runner := pipeline.NewRunner(nil, c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", res.Root))
	spinner.Start()

	artifacts, err := runner.Render(ctx, res, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	formats := opts.Formats
	if len(formats) == 0 {
		formats = pipeline.DefaultFormats
	}
	paths, err := writeArtifacts(artifacts, formats, base)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess("Rendered %s", StyleHighlight.Render(res.Root))
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// loadCrawl reads a crawl saved as JSON.
func loadCrawl(path string) (*crawl.Result, error) {
	res, err := wgio.ImportJSON(path)
	if err != nil {
		return nil, fmt.Errorf("load crawl %s: %w", path, err)
	}
	return res, nil
}
