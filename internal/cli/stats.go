package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wikigraph/pkg/crawl"
	"github.com/matzehuels/wikigraph/pkg/graph"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:               "stats <graph.json>",
		Short:             "Print statistics of a saved crawl",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("json"),
		RunE:              func(cmd *cobra.Command, args []string) error {
			res, err := loadCrawl(args[0])
			if err != nil {
				return err
			}
			printCrawlStats(res, top)
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of most linked titles to list")

	return cmd
}

func printCrawlStats(res *crawl.Result, top int) {
	g := graph.FromResult(res)
	s := graph.Summarize(g)

	fmt.Println(StyleTitle.Render(res.Root))
	printKeyValue("Crawl", res.ID.String())
	printKeyValue("Started", res.Started.Format(time.RFC3339))
	printKeyValue("Duration", res.Duration.Round(time.Millisecond).String())
	printKeyValue("Limits", fmt.Sprintf("depth %d, links %d", res.MaxDepth, res.MaxLinks))
	printKeyValue("Titles", strconv.Itoa(res.Links.Len()))
	printKeyValue("Links", strconv.Itoa(res.TotalLinks()))
	printKeyValue("Graph", fmt.Sprintf("%d nodes, %d edges, %d self-loops", s.Nodes, s.Edges, s.SelfLoops))
	if s.Hub != "" {
		printKeyValue("Hub", fmt.Sprintf("%s (degree %d)", s.Hub, s.MaxDegree))
	}
	fmt.Println()

	if len(res.Levels) > 0 {
		fmt.Println(levelTable(res.Levels))
		fmt.Println()
	}

	if nodes := graph.TopByCount(g, top); len(nodes) > 0 {
		fmt.Println(topTable(nodes))
	}
}

func newStatsTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})
}

// levelTable renders one row per crawl level.
func levelTable(levels []crawl.Level) string {
	t := newStatsTable("Depth", "Frontier", "Fetched", "Failed", "Links", "Time", "")
	for _, lvl := range levels {
		note := ""
		if lvl.Aborted {
			note = StyleWarning.Render("aborted")
		}
		t.Row(
			strconv.Itoa(lvl.Depth),
			strconv.Itoa(lvl.Frontier),
			strconv.Itoa(lvl.Fetched),
			strconv.Itoa(lvl.Failed),
			strconv.Itoa(lvl.Links),
			lvl.Duration.Round(time.Millisecond).String(),
			note,
		)
	}
	return t.Render()
}

// topTable renders the titles with the most links.
func topTable(nodes []*graph.Node) string {
	t := newStatsTable("#", "Title", "Links")
	for i, n := range nodes {
		t.Row(strconv.Itoa(i+1), n.ID, strconv.Itoa(n.Count))
	}
	return t.Render()
}
