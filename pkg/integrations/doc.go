// Package integrations provides the shared HTTP layer for remote APIs.
//
// # Overview
//
// API-specific clients live in subpackages and embed [Client]:
//
//   - [wikipedia]: MediaWiki action API (article link listings)
//
// # Client Pattern
//
//	c := wikipedia.NewClient(cache.NewNullCache(), wikipedia.Options{Language: "en"})
//	resp, err := c.FetchLinks(ctx, "Go_(programming_language)")
//
// [Client] handles:
//   - One GET per call, no retries
//   - Optional response caching via [cache.Cache] (off by default)
//   - Optional client-side rate limiting
//   - Status classification into [ErrNotFound], [ErrNetwork] and [StatusError]
//   - HTTP and cache events through [observability]
//
// [wikipedia]: github.com/matzehuels/wikigraph/pkg/integrations/wikipedia
// [cache.Cache]: github.com/matzehuels/wikigraph/pkg/cache.Cache
// [observability]: github.com/matzehuels/wikigraph/pkg/observability
package integrations
