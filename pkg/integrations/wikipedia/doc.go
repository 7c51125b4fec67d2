// Package wikipedia provides an HTTP client for the MediaWiki action API.
//
// # Overview
//
// This package fetches the outbound link listing of an article with a
// single query shape:
//
//	action=parse&format=json&page=<title>&prop=links
//
// Titles are sent exactly as given. No normalization of case, whitespace or
// redirects is performed.
//
// # Usage
//
//	client, err := wikipedia.NewClient(cache.NewNullCache(), wikipedia.Options{Language: "en"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.FetchLinks(ctx, "Go_(programming_language)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	titles, _ := resp.Parse.ArticleLinks()
//
// # Batches
//
// [LinkFetcher] issues one request per title concurrently and waits for all of
// them. Its results are positionally aligned with the input titles; a failed
// request yields a nil entry and a log line naming the title, never an error.
//
// # Namespaces
//
// MediaWiki tags every link with a namespace number. Only namespace 0 (content
// articles) is reported by [Page.ArticleLinks]; talk, category, template and
// other meta pages are dropped.
package wikipedia
