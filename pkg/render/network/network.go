package network

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"strconv"

	"github.com/matzehuels/wikigraph/pkg/graph"
)

// ScriptURL is the vis-network build loaded by the page.
const ScriptURL = "https://unpkg.com/vis-network@9.1.2/standalone/umd/vis-network.min.js"

// RootColor fills the crawl root.
const RootColor = "red"

// Physics holds the Barnes-Hut parameters of the layout simulation.
type Physics struct {
	Gravity        float64 `json:"gravitationalConstant"`
	CentralGravity float64 `json:"centralGravity"`
	SpringLength   float64 `json:"springLength"`
	SpringConstant float64 `json:"springConstant"`
	Damping        float64 `json:"damping"`
	AvoidOverlap   float64 `json:"avoidOverlap"`
}

// Options configures the page.
type Options struct {
	Title       string
	Height      string // CSS height of the canvas
	Width       string // CSS width of the canvas
	BgColor     string
	FontColor   string
	Physics     Physics
	ShowButtons bool // Show the physics control panel
}

// DefaultOptions returns the classic wikigraph look.
func DefaultOptions() Options {
	return Options{
		Title:     "wikigraph",
		Height:    "100vh",
		Width:     "100%",
		BgColor:   "#11111b",
		FontColor: "white",
		Physics: Physics{
			Gravity:        -40000,
			CentralGravity: 0.3,
			SpringLength:   30,
			SpringConstant: 0.02,
			Damping:        0.09,
		},
		ShowButtons: true,
	}
}

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape string `json:"shape"`
	Color string `json:"color,omitempty"`
	Title string `json:"title,omitempty"`
	Value *int   `json:"value,omitempty"`
	Font  font   `json:"font"`
}

type font struct {
	Color string `json:"color"`
}

type visEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type page struct {
	Options
	Script string
	Nodes  []visNode
	Edges  []visEdge
}

//go:embed page.html.tmpl
var pageSource string

var pageTmpl = template.Must(template.New("page").Parse(pageSource))

// Write renders g as HTML to w.
func Write(w io.Writer, g *graph.Graph, opts Options) error {
	return pageTmpl.Execute(w, build(g, opts))
}

// Render returns g as an HTML page.
func Render(g *graph.Graph, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func build(g *graph.Graph, opts Options) page {
	def := DefaultOptions()
	if opts.Height == "" {
		opts.Height = def.Height
	}
	if opts.Width == "" {
		opts.Width = def.Width
	}
	if opts.BgColor == "" {
		opts.BgColor = def.BgColor
	}
	if opts.FontColor == "" {
		opts.FontColor = def.FontColor
	}
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.Physics == (Physics{}) {
		opts.Physics = def.Physics
	}

	p := page{Options: opts, Script: ScriptURL}
	for _, n := range g.Nodes() {
		vn := visNode{ID: n.ID, Label: n.ID, Shape: "dot", Font: font{Color: opts.FontColor}}
		if n.Root {
			vn.Color = RootColor
		}
		if n.Counted {
			count := n.Count
			vn.Value = &count
			vn.Title = strconv.Itoa(count)
		}
		p.Nodes = append(p.Nodes, vn)
	}
	for _, e := range g.Edges() {
		p.Edges = append(p.Edges, visEdge{From: e.A, To: e.B})
	}
	if p.Nodes == nil {
		p.Nodes = []visNode{}
	}
	if p.Edges == nil {
		p.Edges = []visEdge{}
	}
	return p
}
