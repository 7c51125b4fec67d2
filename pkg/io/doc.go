// Package io provides JSON import and export for crawl results.
//
// # Overview
//
// A saved crawl can be rendered, served, browsed or summarized later without
// querying the API again. The format keeps everything a crawl produced,
// including the order in which titles were first expanded:
//
//	{
//	  "id": "0b7c7a55-...",
//	  "root": "Go",
//	  "max_depth": 2,
//	  "max_links": 10,
//	  "started": "2025-01-01T12:00:00Z",
//	  "duration": 1250000000,
//	  "links": [
//	    {"title": "Go", "children": ["Gopher", "Unix"]},
//	    {"title": "Gopher", "children": []}
//	  ],
//	  "counts": {"Go": 12, "Gopher": 0},
//	  "levels": [{"depth": 1, "frontier": 1, "fetched": 1, "failed": 0, "links": 12, "duration": 400000000}]
//	}
//
// links is a list rather than an object so that key order survives the round
// trip. A title appears once; its children are the concatenation of every
// expansion.
//
// # Import
//
//	res, err := io.ImportJSON("go.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [ReadJSON] rejects documents without a root and link entries without a
// title or with a title listed twice.
//
// # Export
//
//	err := io.ExportJSON(res, "go.json")
package io
