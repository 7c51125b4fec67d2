// Package network renders a link graph as an interactive HTML page.
//
// The page is self-contained apart from the vis-network script it loads from
// a CDN. Nodes are laid out by a Barnes-Hut force simulation that can be tuned
// live from a physics panel below the canvas.
//
//	html, err := network.Render(g, network.DefaultOptions())
//
// Styling follows a dark theme: a #11111b background, white labels and the
// crawl root drawn in red. Nodes with a link count are sized by it, and the
// count shows on hover.
package network
