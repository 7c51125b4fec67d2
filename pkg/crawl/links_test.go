package crawl

import (
	"slices"
	"testing"
)

func TestLinkMapAppend(t *testing.T) {
	var m LinkMap
	m.Append("B", []string{"C"})
	m.Append("A", nil)
	m.Append("B", []string{"D", "C"})

	if got := m.Titles(); !slices.Equal(got, []string{"B", "A"}) {
		t.Errorf("Titles() = %v, want insertion order [B A]", got)
	}
	if got, _ := m.Children("B"); !slices.Equal(got, []string{"C", "D", "C"}) {
		t.Errorf("Children(B) = %v", got)
	}
	if got, ok := m.Children("A"); !ok || got == nil || len(got) != 0 {
		t.Errorf("Children(A) = %v, %v; want empty entry", got, ok)
	}
	if _, ok := m.Children("Z"); ok {
		t.Error("Children(Z) should report no entry")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestLinkMapCopies(t *testing.T) {
	var m LinkMap
	m.Append("A", []string{"B"})

	titles := m.Titles()
	titles[0] = "mutated"
	plain := m.Map()
	plain["A"][0] = "mutated"

	if got, _ := m.Children("A"); got[0] != "B" {
		t.Error("Map() should return copies")
	}
	if m.Titles()[0] != "A" {
		t.Error("Titles() should return a copy")
	}
}

func TestCountsClone(t *testing.T) {
	c := Counts{"A": 1}
	d := c.Clone()
	d["A"] = 5
	if c["A"] != 1 {
		t.Error("Clone() should not alias")
	}
}
