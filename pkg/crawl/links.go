package crawl

import "maps"

// LinkMap maps an article title to its truncated child titles.
// Keys keep first-insertion order. The zero value is ready to use.
type LinkMap struct {
	keys     []string
	children map[string][]string
}

// Append adds children to title's entry, creating the entry if needed.
// An empty children slice still creates the entry.
func (m *LinkMap) Append(title string, children []string) {
	if m.children == nil {
		m.children = make(map[string][]string)
	}
	existing, ok := m.children[title]
	if !ok {
		m.keys = append(m.keys, title)
		existing = []string{}
	}
	m.children[title] = append(existing, children...)
}

// Children returns the children of title and whether it has an entry.
func (m *LinkMap) Children(title string) ([]string, bool) {
	c, ok := m.children[title]
	return c, ok
}

// Titles returns the keys in first-insertion order.
func (m *LinkMap) Titles() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m *LinkMap) Len() int { return len(m.keys) }

// Map returns a copy of the entries as a plain map.
func (m *LinkMap) Map() map[string][]string {
	out := make(map[string][]string, len(m.children))
	for k, v := range m.children {
		out[k] = append([]string{}, v...)
	}
	return out
}

// Counts maps an article title to the cumulative number of namespace-0 links
// found over every expansion of that title, counted before truncation.
type Counts map[string]int

// Clone returns a copy of c.
func (c Counts) Clone() Counts {
	return maps.Clone(c)
}
