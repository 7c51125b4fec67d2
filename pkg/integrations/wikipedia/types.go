package wikipedia

import (
	"errors"
	"fmt"
)

// ArticleNamespace is the MediaWiki namespace of content articles.
const ArticleNamespace = 0

// ErrMalformedLink is returned when a link entry lacks its namespace or title.
var ErrMalformedLink = errors.New("malformed link entry")

// Response is the decoded body of a parse query.
//
// A successful lookup sets Parse. MediaWiki reports unknown pages with status
// 200 and an Error object instead, so callers must not assume Parse is set.
type Response struct {
	Parse *Page     `json:"parse,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

// Page is the parse payload of a single article.
type Page struct {
	Title  string `json:"title"`
	PageID int    `json:"pageid"`
	// Links is nil when the payload carried no links listing
	// and empty when the article links nowhere.
	Links []Link `json:"links"`
}

// Link is one entry of a links listing. Fields are pointers so that missing
// keys can be told apart from zero values.
type Link struct {
	NS     *int    `json:"ns,omitempty"`
	Title  *string `json:"*,omitempty"`
	Exists *string `json:"exists,omitempty"`
}

// APIError is the error object MediaWiki returns alongside status 200.
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mediawiki: %s: %s", e.Code, e.Info)
}

// LinkListing returns the page's links and whether the response carried a
// links listing at all.
func (r *Response) LinkListing() (*Page, bool) {
	if r == nil || r.Parse == nil || r.Parse.Links == nil {
		return nil, false
	}
	return r.Parse, true
}

// ArticleLinks returns the titles of namespace-0 links in API order.
// Entries in other namespaces are skipped. An entry missing its namespace or
// title yields [ErrMalformedLink].
func (p *Page) ArticleLinks() ([]string, error) {
	titles := make([]string, 0, len(p.Links))
	for i, l := range p.Links {
		if l.NS == nil || l.Title == nil {
			return nil, fmt.Errorf("%w: %s link %d", ErrMalformedLink, p.Title, i)
		}
		if *l.NS != ArticleNamespace {
			continue
		}
		titles = append(titles, *l.Title)
	}
	return titles, nil
}
