package wikipedia

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wikigraph/pkg/integrations"
)

// LinkFetcher fetches the link listings of a batch of titles concurrently.
type LinkFetcher struct {
	client      *Client
	concurrency int
	logger      *log.Logger
}

// NewLinkFetcher wraps client. A concurrency of zero or less issues every
// request of a batch at once. A nil logger discards diagnostics.
func NewLinkFetcher(client *Client, concurrency int, logger *log.Logger) *LinkFetcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LinkFetcher{client: client, concurrency: concurrency, logger: logger}
}

// FetchAll issues one request per title and blocks until all of them have
// settled. result[i] belongs to titles[i] and is nil if that request failed;
// failures are logged and never returned.
func (f *LinkFetcher) FetchAll(ctx context.Context, titles []string) []*Response {
	results := make([]*Response, len(titles))

	var g errgroup.Group
	if f.concurrency > 0 {
		g.SetLimit(f.concurrency)
	}
	for i, title := range titles {
		g.Go(func() error {
			resp, err := f.client.FetchLinks(ctx, title)
			if err != nil {
				f.logFailure(title, err)
				return nil
			}
			results[i] = resp
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (f *LinkFetcher) logFailure(title string, err error) {
	var se *integrations.StatusError
	if errors.As(err, &se) {
		f.logger.Warn("unable to fetch links", "title", title, "status", se.StatusCode)
		return
	}
	f.logger.Warn("error while fetching links", "title", title, "err", err)
}
