// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suffixtree

import (
	"reflect"
	"sort"
	"testing"
)

func TestWordSuffixes(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []WordSuffix
	}{
		{"empty", "", []WordSuffix{{0, ""}}},
		{"single word", "bismi", []WordSuffix{{0, "bismi"}}},
		{
			"two words",
			"bismi allahi",
			[]WordSuffix{{0, "bismi allahi"}, {6, "allahi"}},
		},
		{
			"arabic break mark separates words",
			"alifۖlam",
			[]WordSuffix{{0, "alifۖlam"}, {6, "lam"}},
		},
		{
			"repeated separators collapse to one boundary",
			"a   b",
			[]WordSuffix{{0, "a   b"}, {4, "b"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WordSuffixes(tc.text); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("WordSuffixes(%q) = %#v, want %#v", tc.text, got, tc.want)
			}
		})
	}
}

// insertText inserts every word-suffix of text under index idx.
func insertText(tr *Tree, idx int, text string, mystery bool) {
	for _, ws := range WordSuffixes(text) {
		tr.Insert(Data{Index: idx, Offset: ws.Offset}, ws.Text, mystery)
	}
}

func TestTreeStructuralInvariants(t *testing.T) {
	tr := New()
	texts := []string{
		"bismi allahi arrohmani arrohiimi",
		"alhamdu lillahi robbil alamiina",
		"arrohmani arrohiimi",
	}
	wantSuffixes := 0
	for i, s := range texts {
		insertText(tr, i, s, false)
		wantSuffixes += len(WordSuffixes(s))
	}

	if got, want := tr.VertexCount(), tr.EdgeCount()+1; got != want {
		t.Errorf("VertexCount() = %d, want EdgeCount()+1 = %d", got, want)
	}

	if got := tr.CountData(Root); got != wantSuffixes {
		t.Errorf("CountData(Root) = %d, want %d (total inserted suffixes)", got, wantSuffixes)
	}

	if got := len(tr.CollectData(Root)); got != wantSuffixes {
		t.Errorf("len(CollectData(Root)) = %d, want %d", got, wantSuffixes)
	}
}

func TestInsertSharedPrefixSplitsEdge(t *testing.T) {
	tr := New()
	tr.Insert(Data{Index: 0, Offset: 0}, "arrohmani", false)
	tr.Insert(Data{Index: 1, Offset: 0}, "arrohiimi", false)

	edges := tr.EdgesFrom(Root)
	if len(edges) != 1 {
		t.Fatalf("EdgesFrom(Root) = %d edges, want 1 (shared prefix arroh)", len(edges))
	}
	if edges[0].Label != "arroh" {
		t.Errorf("shared edge label = %q, want %q", edges[0].Label, "arroh")
	}

	children := tr.EdgesFrom(edges[0].Child)
	if len(children) != 2 {
		t.Fatalf("split node has %d children, want 2", len(children))
	}
}

func TestFindReturnsAllOccurrences(t *testing.T) {
	tr := New()
	insertText(tr, 0, "bismi allahi arrohmani arrohiimi", false)
	insertText(tr, 1, "arrohmani arrohiimi", false)

	got := tr.Find("arroh")
	if len(got) != 4 {
		t.Fatalf("Find(%q) = %d results, want 4 (two word-suffixes per source text): %+v", "arroh", len(got), got)
	}

	idx := map[int]int{}
	for _, d := range got {
		idx[d.Index]++
	}
	if idx[0] != 2 || idx[1] != 2 {
		t.Errorf("Find(%q) did not yield 2 occurrences in each source text: %+v", "arroh", got)
	}
}

func TestFindExactMatchIncludesOwnNode(t *testing.T) {
	tr := New()
	insertText(tr, 0, "alif", true)
	insertText(tr, 1, "alif lam", false)

	got := tr.Find("alif")
	sort.Slice(got, func(i, j int) bool { return got[i].Index < got[j].Index })
	if len(got) != 2 {
		t.Fatalf("Find(%q) = %+v, want 2 occurrences (one exact, one as a prefix of a longer suffix)", "alif", got)
	}
}

// locate descends from the root consuming s, returning the node reached
// once s is fully consumed (stopping partway through an edge's label is
// treated as reaching that edge's child, matching Find's own semantics).
func locate(tr *Tree, s string) (int, bool) {
	v := Root
	for s != "" {
		found := false
		for _, e := range tr.EdgesFrom(v) {
			switch {
			case len(s) <= len(e.Label) && e.Label[:len(s)] == s:
				v, s, found = e.Child, "", true
			case len(s) > len(e.Label) && s[:len(e.Label)] == e.Label:
				v, s, found = e.Child, s[len(e.Label):], true
			}
			if found {
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return v, true
}

func TestHasMysteryDescendant(t *testing.T) {
	tr := New()
	insertText(tr, 0, "alif lam mim", true)
	insertText(tr, 1, "bismi allahi", false)

	got := tr.Find("alif")
	if len(got) != 1 {
		t.Fatalf("Find(%q) = %+v, want 1 occurrence", "alif", got)
	}

	v, ok := locate(tr, "alif")
	if !ok {
		t.Fatalf("locate(%q) found no node", "alif")
	}
	if !tr.HasMysteryDescendant(v) {
		t.Errorf("HasMysteryDescendant at node for %q = false, want true", "alif")
	}

	vb, ok := locate(tr, "bismi")
	if !ok {
		t.Fatalf("locate(%q) found no node", "bismi")
	}
	if tr.HasMysteryDescendant(vb) {
		t.Errorf("HasMysteryDescendant at node for %q = true, want false", "bismi")
	}
}
