package crawl

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one crawl.
type Result struct {
	ID       uuid.UUID // Identifies the crawl in logs and exports
	Root     string    // Starting title
	MaxDepth int
	MaxLinks int
	Started  time.Time
	Duration time.Duration

	Links  LinkMap
	Counts Counts
	Levels []Level
}

// Level records what happened at one depth.
type Level struct {
	Depth    int           `json:"depth"`
	Frontier int           `json:"frontier"` // Titles scheduled at this depth
	Fetched  int           `json:"fetched"`  // Titles whose response carried a links listing
	Failed   int           `json:"failed"`   // Titles with no usable response
	Links    int           `json:"links"`    // Pre-truncation namespace-0 links found
	Aborted  bool          `json:"aborted,omitempty"`
	Duration time.Duration `json:"duration"`
}

func newResult(root string, opts Options) *Result {
	return &Result{
		ID:       uuid.New(),
		Root:     root,
		MaxDepth: opts.MaxDepth,
		MaxLinks: opts.MaxLinks,
		Started:  time.Now(),
		Counts:   Counts{},
	}
}

// TotalLinks returns the sum of pre-truncation links over all levels.
func (r *Result) TotalLinks() int {
	n := 0
	for _, l := range r.Levels {
		n += l.Links
	}
	return n
}
