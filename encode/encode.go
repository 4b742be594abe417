// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encode implements the non-deterministic reverse-transliteration
// search: given a normalized Latin string, it walks the corpus suffix
// tree and the translit tables together, trying every plausible
// romanization fragment at each Arabic character, and collects every
// Arabic substring the input could have come from. Exact
// substring-location queries are answered by Find, which delegates to
// the suffix tree's own Find.
//
// This mirrors the teacher's tagger.Viterbi (tagger/hmm.go) in shape -
// both are a recursive walk that threads a small amount of state
// (there, trellis probabilities; here, the previous Arabic rune, the
// bytes matched so far, and the fragments that produced them) through a
// search space defined by someone else's data structure - but the search
// itself has no probabilistic element: every branch that locally matches
// is explored, and "best" is simply "found at all".
package encode

import (
	"strings"
	"unicode/utf8"

	"github.com/harflab/quranize/suffixtree"
	"github.com/harflab/quranize/translit"
)

// DefaultMaxHarfs bounds the number of Arabic characters a single
// candidate encoding may accumulate, guarding against pathological
// inputs (e.g. a long run of a single vowel letter) turning the search
// combinatorial. Zero disables the bound.
const DefaultMaxHarfs = 64

// Mode selects which transliteration tables the search draws fragments
// from.
type Mode int

const (
	// Normal uses translit.Base and translit.Context: ordinary word
	// transliteration.
	Normal Mode = iota
	// Mystery additionally draws from translit.Mystery (spelled-out
	// letter names) and only accepts candidates that land inside a
	// subtree flagged by suffixtree.Tree.HasMysteryDescendant.
	Mystery
)

// Result is one candidate Arabic substring a search landed on: the
// matched text itself, how many corpus occurrences it has
// (suffixtree.Tree.CountData at the landing node), and the Latin
// fragment that produced each Arabic character in Arabic, in order
// (len(Fragments) == the rune count of Arabic).
type Result struct {
	Arabic        string
	LocationCount int
	Fragments     []string
}

// Search walks tr looking for every Arabic substring that input could
// romanize to under mode. maxHarfs caps the accumulated Arabic rune
// count per candidate; pass 0 for no cap. Results are deduplicated and
// returned in the order first discovered, which is the tree's canonical
// edge order (see suffixtree.Tree.EdgesFrom).
func Search(tr *suffixtree.Tree, input string, mode Mode, maxHarfs int) []Result {
	if input == "" {
		return nil
	}

	s := &searcher{
		tree:     tr,
		mode:     mode,
		maxHarfs: maxHarfs,
		seen:     make(map[string]bool),
	}
	s.walkNode(suffixtree.Root, input, "", nil, 0, false, 0)
	return s.order
}

// Find returns every corpus occurrence whose word-suffix begins with
// arabic, the same substring-location query spec.md §4.5 describes,
// exposed here (rather than only via suffixtree.Tree.Find) so that the
// finder lives in the same package as the encoder that shares its walk
// primitives.
func Find(tr *suffixtree.Tree, arabic string) []suffixtree.Data {
	return tr.Find(arabic)
}

type searcher struct {
	tree     *suffixtree.Tree
	mode     Mode
	maxHarfs int
	seen     map[string]bool
	order    []Result
}

func (s *searcher) record(v int, consumed string, fragments []string) {
	if s.mode == Mystery && !s.tree.HasMysteryDescendant(v) {
		return
	}
	if s.seen[consumed] {
		return
	}
	s.seen[consumed] = true
	s.order = append(s.order, Result{
		Arabic:        consumed,
		LocationCount: s.tree.CountData(v),
		Fragments:     fragments,
	})
}

func (s *searcher) walkNode(v int, input, consumed string, fragments []string, prev rune, hasPrev bool, harfs int) {
	for _, e := range s.tree.EdgesFrom(v) {
		s.walkEdge(e.Child, e.Label, input, consumed, fragments, prev, hasPrev, harfs)
	}
}

func (s *searcher) walkEdge(v int, label, input, consumed string, fragments []string, prev rune, hasPrev bool, harfs int) {
	if input == "" {
		s.record(v, consumed, fragments)
		return
	}
	if label == "" {
		s.walkNode(v, input, consumed, fragments, prev, hasPrev, harfs)
		return
	}
	if s.maxHarfs > 0 && harfs >= s.maxHarfs {
		return
	}

	c, size := utf8.DecodeRuneInString(label)
	rest := label[size:]
	next := consumed + label[:size]

	for _, frag := range s.fragments(c, prev, hasPrev) {
		// Reslice to length before appending so every sibling branch of
		// this DFS gets its own backing array: without this, two
		// branches sharing spare capacity in fragments could each
		// overwrite the other's retained slice.
		nextFragments := append(fragments[:len(fragments):len(fragments)], frag)

		if frag == "" {
			s.walkEdge(v, rest, input, next, nextFragments, c, true, harfs+1)
			continue
		}
		if strings.HasPrefix(input, frag) {
			s.walkEdge(v, rest, input[len(frag):], next, nextFragments, c, true, harfs+1)
		}
	}
}

// fragments unions the plausible Latin fragments for c from every table
// active under the current mode, deduplicated so the same fragment is
// never tried twice at one position.
func (s *searcher) fragments(c, prev rune, hasPrev bool) []string {
	seen := make(map[string]bool, 8)
	var out []string
	add := func(frags []string) {
		for _, f := range frags {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}

	add(translit.Base(c))
	add(translit.Context(prev, hasPrev, c))
	if s.mode == Mystery {
		add(translit.Mystery(c))
	}
	return out
}
