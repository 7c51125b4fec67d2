// Package crawl builds the link graph of an article, one depth level at a time.
//
// # Algorithm
//
// [Builder.Build] starts with a frontier holding the root title and repeats,
// for depth 1 through MaxDepth:
//
//  1. Fetch the links of every frontier title concurrently and wait for all.
//  2. For each title in frontier order, keep the namespace-0 links, add their
//     count to [Counts], truncate them to MaxLinks and append them both to the
//     title's entry in [LinkMap] and to the next frontier.
//  3. Move to the next frontier.
//
// Exactly MaxDepth levels are run, even when a level finds nothing.
//
// # Revisits
//
// Titles are never deduplicated. A title reached twice is fetched twice, its
// children are appended to its existing entry and its count grows by both
// expansions. Cross-linked articles therefore cost repeated requests; this
// matches the behavior users of earlier versions rely on.
//
// # Failures
//
// A failed fetch or a response without a links listing is logged and gives
// the title zero children; siblings are unaffected. A malformed link entry
// stops the rest of that level, keeps what was already merged and moves on to
// the next depth. Only context cancellation makes Build return an error.
package crawl
