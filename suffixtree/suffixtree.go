// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suffixtree implements a generalized suffix tree over the
// word-start suffixes of a fixed text corpus: a compact trie in which
// every internal node is annotated with the number of leaves in its
// subtree and whether any of those leaves originates from one of a
// caller-designated set of "marked" source texts.
//
// This is the teacher's words.wordSuffixTree (words/suffix_tree.go)
// generalized from a fixed-depth reversed-word suffix index used to
// estimate tag probabilities into a full generalized suffix tree with
// compressed (non-unary) edges, used here to answer substring-location
// and reverse-transliteration queries instead of emission probabilities.
package suffixtree

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Root is the index of the tree's root node. The root is the only node
// with no incoming edge; it never carries Data of its own.
const Root = 0

// Data identifies a single word-suffix occurrence: the index of the
// source text it came from, and the byte offset within that text where
// the suffix begins.
type Data struct {
	Index  int
	Offset int
}

// Edge is a labeled transition from a parent node to a child node. Label
// is always non-empty.
type Edge struct {
	Label string
	Child int
}

type node struct {
	locations            []Data
	descendantLeafCount  int
	hasMysteryDescendant bool
	children             map[rune]Edge
}

// Tree is a generalized suffix tree, built once and read many times. The
// zero value is not usable; construct with New.
type Tree struct {
	nodes []node
}

// New returns an empty tree containing only the root.
func New() *Tree {
	t := &Tree{nodes: make([]node, 0, 1<<17)}
	t.addNode()
	return t
}

func (t *Tree) addNode() int {
	t.nodes = append(t.nodes, node{children: make(map[rune]Edge)})
	return len(t.nodes) - 1
}

// VertexCount returns the number of nodes in the tree, including the root.
func (t *Tree) VertexCount() int {
	return len(t.nodes)
}

// EdgeCount returns the number of edges in the tree. For a well-formed
// tree this is always VertexCount()-1.
func (t *Tree) EdgeCount() int {
	n := 0
	for i := range t.nodes {
		n += len(t.nodes[i].children)
	}
	return n
}

// Insert adds one word-suffix occurrence to the tree: suffix is the text
// starting at a word boundary of the source text identified by data,
// mystery marks whether that source text belongs to the caller's set of
// marked (mystery-letter) texts. suffix must be non-empty.
func (t *Tree) Insert(data Data, suffix string, mystery bool) {
	if suffix == "" {
		panic("suffixtree: empty insertion label")
	}
	t.insert(Root, suffix, data, mystery)
}

func (t *Tree) insert(at int, s string, data Data, mystery bool) {
	t.nodes[at].descendantLeafCount++
	if mystery {
		t.nodes[at].hasMysteryDescendant = true
	}

	r, _ := utf8.DecodeRuneInString(s)
	e, ok := t.nodes[at].children[r]
	if !ok {
		leaf := t.addNode()
		t.nodes[at].children[r] = Edge{Label: s, Child: leaf}
		t.terminate(leaf, data, mystery)
		return
	}

	cpl := commonPrefixLen(s, e.Label)
	switch {
	case cpl == len(e.Label):
		rest := s[cpl:]
		if rest == "" {
			t.terminate(e.Child, data, mystery)
			return
		}
		t.insert(e.Child, rest, data, mystery)

	default: // cpl < len(e.Label): split the edge
		mid := t.addNode()
		t.nodes[mid].descendantLeafCount = t.nodes[e.Child].descendantLeafCount + 1
		t.nodes[mid].hasMysteryDescendant = t.nodes[e.Child].hasMysteryDescendant || mystery

		t.nodes[at].children[r] = Edge{Label: s[:cpl], Child: mid}

		oldRest := e.Label[cpl:]
		oldRestRune, _ := utf8.DecodeRuneInString(oldRest)
		t.nodes[mid].children[oldRestRune] = Edge{Label: oldRest, Child: e.Child}

		rest := s[cpl:]
		if rest == "" {
			t.nodes[mid].locations = append(t.nodes[mid].locations, data)
			return
		}

		leaf := t.addNode()
		restRune, _ := utf8.DecodeRuneInString(rest)
		t.nodes[mid].children[restRune] = Edge{Label: rest, Child: leaf}
		t.terminate(leaf, data, mystery)
	}
}

func (t *Tree) terminate(at int, data Data, mystery bool) {
	t.nodes[at].locations = append(t.nodes[at].locations, data)
	t.nodes[at].descendantLeafCount++
	if mystery {
		t.nodes[at].hasMysteryDescendant = true
	}
}

// EdgesFrom returns the outgoing edges of v in canonical order (by the
// label's bytes, so by first byte first), the order the encoder's
// depth-first search relies on for its own ordering guarantee.
func (t *Tree) EdgesFrom(v int) []Edge {
	n := &t.nodes[v]
	edges := make([]Edge, 0, len(n.children))
	for _, e := range n.children {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Label < edges[j].Label })
	return edges
}

// CountData returns the number of word-suffix occurrences in the subtree
// rooted at v (descendant_leaf_count).
func (t *Tree) CountData(v int) int {
	return t.nodes[v].descendantLeafCount
}

// HasMysteryDescendant reports whether any occurrence in the subtree
// rooted at v originates from one of the caller's marked source texts.
func (t *Tree) HasMysteryDescendant(v int) bool {
	return t.nodes[v].hasMysteryDescendant
}

// CollectData gathers every occurrence in the subtree rooted at v via a
// depth-first walk. This is the fallback used by Find; callers on a hot
// path should prefer CountData when only the count is needed.
func (t *Tree) CollectData(v int) []Data {
	var out []Data
	t.collect(v, &out)
	return out
}

func (t *Tree) collect(v int, out *[]Data) {
	*out = append(*out, t.nodes[v].locations...)
	for _, e := range t.EdgesFrom(v) {
		t.collect(e.Child, out)
	}
}

// Find returns every occurrence whose word-suffix begins with s. An empty
// s always returns nil.
func (t *Tree) Find(s string) []Data {
	if s == "" {
		return nil
	}
	return t.find(Root, s)
}

func (t *Tree) find(v int, s string) []Data {
	var out []Data
	for _, e := range t.EdgesFrom(v) {
		switch {
		case len(s) <= len(e.Label) && strings.HasPrefix(e.Label, s):
			out = append(out, t.CollectData(e.Child)...)
		case len(s) > len(e.Label) && strings.HasPrefix(s, e.Label):
			out = append(out, t.find(e.Child, s[len(e.Label):])...)
		}
	}
	return out
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	// Back up to a rune boundary so an edge is never split inside a
	// multi-byte character.
	for i > 0 && i < len(a) && !utf8.RuneStart(a[i]) {
		i--
	}
	return i
}

// Preallocate hints the node slice to capacity n, amortizing the
// reallocations of a large construction (the canonical corpus builds on
// the order of 1.2-1.3x10^5 vertices).
func (t *Tree) Preallocate(n int) {
	if cap(t.nodes) >= n {
		return
	}
	grown := make([]node, len(t.nodes), n)
	copy(grown, t.nodes)
	t.nodes = grown
}

func (t *Tree) String() string {
	return fmt.Sprintf("suffixtree: %d vertices, %d edges", t.VertexCount(), t.EdgeCount())
}
