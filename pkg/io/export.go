package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/wikigraph/pkg/crawl"
)

type document struct {
	ID       uuid.UUID      `json:"id"`
	Root     string         `json:"root"`
	MaxDepth int            `json:"max_depth"`
	MaxLinks int            `json:"max_links"`
	Started  time.Time      `json:"started"`
	Duration time.Duration  `json:"duration"`
	Links    []entry        `json:"links"`
	Counts   map[string]int `json:"counts"`
	Levels   []crawl.Level  `json:"levels"`
}

type entry struct {
	Title    string   `json:"title"`
	Children []string `json:"children"`
}

// WriteJSON encodes a crawl result as indented JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(res *crawl.Result, w io.Writer) error {
	out := document{
		ID:       res.ID,
		Root:     res.Root,
		MaxDepth: res.MaxDepth,
		MaxLinks: res.MaxLinks,
		Started:  res.Started,
		Duration: res.Duration,
		Links:    make([]entry, 0, res.Links.Len()),
		Counts:   res.Counts,
		Levels:   res.Levels,
	}
	if out.Counts == nil {
		out.Counts = map[string]int{}
	}
	if out.Levels == nil {
		out.Levels = []crawl.Level{}
	}
	for _, t := range res.Links.Titles() {
		children, _ := res.Links.Children(t)
		out.Links = append(out.Links, entry{Title: t, Children: children})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON returns the encoding produced by [WriteJSON].
func MarshalJSON(res *crawl.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(res, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes a crawl result to a JSON file at path.
func ExportJSON(res *crawl.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(res, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
