package crawl_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/wikigraph/pkg/crawl"
	"github.com/matzehuels/wikigraph/pkg/integrations/wikipedia"
)

func page(title string, links ...string) *wikipedia.Response {
	p := &wikipedia.Page{Title: title, Links: []wikipedia.Link{}}
	for _, l := range links {
		ns, t := 0, l
		p.Links = append(p.Links, wikipedia.Link{NS: &ns, Title: &t})
	}
	return &wikipedia.Response{Parse: p}
}

func Example() {
	wiki := map[string]*wikipedia.Response{
		"Go":     page("Go", "Gopher", "Plan 9", "Unix"),
		"Gopher": page("Gopher", "Go"),
		"Plan 9": page("Plan 9", "Unix"),
	}
	fetcher := crawl.FetcherFunc(func(_ context.Context, titles []string) []*wikipedia.Response {
		out := make([]*wikipedia.Response, len(titles))
		for i, t := range titles {
			out[i] = wiki[t]
		}
		return out
	})

	b := crawl.NewBuilder(fetcher, crawl.Options{MaxDepth: 2, MaxLinks: 2})
	res, _ := b.Build(context.Background(), "Go")

	for _, title := range res.Links.Titles() {
		children, _ := res.Links.Children(title)
		fmt.Println(title, children, res.Counts[title])
	}
	// Output:
	// Go [Gopher Plan 9] 3
	// Gopher [Go] 1
	// Plan 9 [Unix] 1
}
