package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wikigraph/pkg/crawl"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <graph.json>",
		Short: "Walk a saved crawl in the terminal",
		Long: `Walk a saved crawl in the terminal.

Starting at the root article, browse lists the links kept for the current
title together with their link counts. Enter follows a link that was
expanded during the crawl, backspace goes back.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("json"),
		RunE:              func(cmd *cobra.Command, args []string) error {
			res, err := loadCrawl(args[0])
			if err != nil {
				return err
			}
			return runBrowse(cmd.Context(), res)
		},
	}
}

func runBrowse(ctx context.Context, res *crawl.Result) error {
	_, err := tea.NewProgram(newBrowseModel(res), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// browseModel - Interactive crawl navigation
// =============================================================================

// browseFrame is one title on the navigation path.
type browseFrame struct {
	title  string
	cursor int
	offset int
}

// browseModel is the bubbletea model for walking the adjacency map.
type browseModel struct {
	res    *crawl.Result
	path   []browseFrame
	height int
}

func newBrowseModel(res *crawl.Result) browseModel {
	return browseModel{
		res:    res,
		path:   []browseFrame{{title: res.Root}},
		height: 15,
	}
}

func (m browseModel) current() *browseFrame { return &m.path[len(m.path)-1] }

func (m browseModel) children() []string {
	children, _ := m.res.Links.Children(m.current().title)
	return children
}

// expanded reports whether the crawl fetched links for title.
func (m browseModel) expanded(title string) bool {
	_, ok := m.res.Links.Children(title)
	return ok
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// path frames are shared with the previous model value; copy before mutating.
		m.path = append([]browseFrame(nil), m.path...)
		f := m.current()
		n := len(m.children())

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if f.cursor > 0 {
				f.cursor--
				if f.cursor < f.offset {
					f.offset = f.cursor
				}
			}
		case "down", "j":
			if f.cursor < n-1 {
				f.cursor++
				if f.cursor >= f.offset+m.height {
					f.offset = f.cursor - m.height + 1
				}
			}
		case "enter", "right", "l":
			if n == 0 {
				return m, nil
			}
			next := m.children()[f.cursor]
			if m.expanded(next) {
				m.path = append(m.path, browseFrame{title: next})
			}
		case "backspace", "left", "h":
			if len(m.path) > 1 {
				m.path = m.path[:len(m.path)-1]
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder
	f := m.current()

	b.WriteString(StyleTitle.Render(f.title))
	if count, ok := m.res.Counts[f.title]; ok {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d links", count)))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(m.breadcrumb()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ follow  ⌫ back  q quit"))
	b.WriteString("\n\n")

	children := m.children()
	if len(children) == 0 {
		b.WriteString(listDimStyle.Render("  no links kept for this title"))
		return b.String()
	}

	end := min(f.offset+m.height, len(children))
	rows := make([][]string, 0, end-f.offset)
	for i := f.offset; i < end; i++ {
		child := children[i]
		cursor := "  "
		if i == f.cursor {
			cursor = "▸ "
		}
		count := "—"
		if n, ok := m.res.Counts[child]; ok {
			count = strconv.Itoa(n)
		}
		rows = append(rows, []string{cursor, child, count})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Title", "Links").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := f.offset + row
			if idx >= len(children) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if !m.expanded(children[idx]) {
				base = base.Foreground(colorDim)
			}
			if idx == f.cursor {
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", f.cursor+1, len(children))))

	return b.String()
}

func (m browseModel) breadcrumb() string {
	titles := make([]string, len(m.path))
	for i, f := range m.path {
		titles[i] = f.title
	}
	return strings.Join(titles, " "+iconArrow+" ")
}
