package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/wikigraph/pkg/crawl"
	wgerrors "github.com/matzehuels/wikigraph/pkg/errors"
)

var (
	// ErrMissingRoot is returned when a document has no root title.
	ErrMissingRoot = errors.New("missing root title")

	// ErrInvalidEntry is returned for a link entry without a title.
	ErrInvalidEntry = errors.New("link entry without title")

	// ErrDuplicateEntry is returned when a title has two link entries.
	ErrDuplicateEntry = errors.New("duplicate link entry")
)

// ReadJSON decodes a crawl result written by [WriteJSON].
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*crawl.Result, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Root == "" {
		return nil, ErrMissingRoot
	}

	res := &crawl.Result{
		ID:       data.ID,
		Root:     data.Root,
		MaxDepth: data.MaxDepth,
		MaxLinks: data.MaxLinks,
		Started:  data.Started,
		Duration: data.Duration,
		Counts:   crawl.Counts(data.Counts),
		Levels:   data.Levels,
	}
	if res.Counts == nil {
		res.Counts = crawl.Counts{}
	}

	seen := make(map[string]bool, len(data.Links))
	for i, e := range data.Links {
		if e.Title == "" {
			return nil, fmt.Errorf("links[%d]: %w", i, ErrInvalidEntry)
		}
		if seen[e.Title] {
			return nil, fmt.Errorf("links[%d] %s: %w", i, e.Title, ErrDuplicateEntry)
		}
		seen[e.Title] = true
		res.Links.Append(e.Title, e.Children)
	}
	return res, nil
}

// UnmarshalJSON decodes a crawl result from data.
func UnmarshalJSON(data []byte) (*crawl.Result, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads a crawl result from the JSON file at path.
func ImportJSON(path string) (*crawl.Result, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, wgerrors.Wrap(wgerrors.ErrCodeNotFound, err, "crawl file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	res, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
