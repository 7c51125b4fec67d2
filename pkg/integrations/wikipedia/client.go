package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/matzehuels/wikigraph/pkg/buildinfo"
	"github.com/matzehuels/wikigraph/pkg/cache"
	"github.com/matzehuels/wikigraph/pkg/errors"
	"github.com/matzehuels/wikigraph/pkg/integrations"
)

const (
	// DefaultLanguage is the wiki queried when neither APIURL nor Language is set.
	DefaultLanguage = "en"

	// DefaultCacheTTL is how long cached link listings stay valid.
	DefaultCacheTTL = 24 * time.Hour
)

// APIURL returns the action API endpoint of the Wikipedia edition for lang.
func APIURL(lang string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
}

// Options configures a [Client] and the [LinkFetcher] built on it.
//
// Zero values select the defaults: English Wikipedia, the build's user agent,
// [integrations.DefaultTimeout], no rate limit and unbounded concurrency.
type Options struct {
	APIURL      string        // Full endpoint; overrides Language
	Language    string        // Wikipedia edition, e.g. "en" or "de"
	UserAgent   string        // Sent with every request
	Timeout     time.Duration // Per-request timeout
	RateLimit   float64       // Requests per second, 0 = unlimited
	Concurrency int           // In-flight requests per batch, 0 = one per title
	CacheTTL    time.Duration // Lifetime of cached responses
	Refresh     bool          // Bypass cached responses
}

func (o Options) endpoint() string {
	if o.APIURL != "" {
		return o.APIURL
	}
	lang := o.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	return APIURL(lang)
}

// Client queries article link listings.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	apiURL  string
	refresh bool
}

// NewClient creates a client for the endpoint selected by opts.
// Pass [cache.NewNullCache] to disable caching.
//
// Returns an error with code [errors.ErrCodeInvalidURL] if the endpoint is
// not an absolute http(s) URL.
func NewClient(backend cache.Cache, opts Options) (*Client, error) {
	endpoint := opts.endpoint()
	if err := errors.ValidateURL(endpoint); err != nil {
		return nil, err
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = buildinfo.UserAgent()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	base := integrations.NewClient(backend, "wikipedia:", ttl, map[string]string{
		"User-Agent": ua,
		"Accept":     "application/json",
	})
	base.SetHTTPClient(integrations.NewHTTPClient(opts.Timeout))
	base.SetRateLimit(opts.RateLimit)

	return &Client{Client: base, apiURL: endpoint, refresh: opts.Refresh}, nil
}

// Endpoint returns the action API URL the client queries.
func (c *Client) Endpoint() string { return c.apiURL }

// FetchLinks retrieves the links listing of title.
//
// The body of a status 200 response is returned as decoded, including
// MediaWiki error objects. Returns:
//   - [integrations.ErrNotFound] for status 404
//   - [*integrations.StatusError] for any other non-200 status
//   - [integrations.ErrNetwork] for transport failures
//   - a decode error for malformed JSON
func (c *Client) FetchLinks(ctx context.Context, title string) (*Response, error) {
	var resp Response
	err := c.Cached(ctx, c.apiURL+"|"+title, c.refresh, &resp, func() error {
		return c.Get(ctx, c.queryURL(title), &resp)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) queryURL(title string) string {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("format", "json")
	q.Set("page", title)
	q.Set("prop", "links")
	return c.apiURL + "?" + q.Encode()
}
