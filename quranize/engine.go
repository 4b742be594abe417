// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quranize ties the corpus, suffix tree, normalization and
// transliteration packages together into a single Engine: build it once
// from a corpus, then call Encode to reverse-transliterate a Latin
// string into candidate Arabic substrings, or Find to locate an Arabic
// substring's occurrences.
//
// The shape follows the teacher's model.Model (model/model.go): a value
// built once from training/corpus data and then queried many times, with
// construction kept separate from the lookup operations it supports.
package quranize

import (
	"fmt"
	"io"

	"github.com/harflab/quranize/corpus"
	"github.com/harflab/quranize/encode"
	"github.com/harflab/quranize/normalize"
	"github.com/harflab/quranize/suffixtree"
)

// Engine answers reverse-transliteration and substring-location queries
// against a fixed corpus.
type Engine struct {
	corpus   *corpus.Corpus
	tree     *suffixtree.Tree
	maxHarfs int
}

// Location identifies one occurrence of a matched Arabic substring.
type Location struct {
	Sura   int
	Aya    int
	Offset int
}

// EncodeResult is one candidate Arabic substring Encode found: the
// matched text, how many times it occurs in the corpus, and the Latin
// fragment that produced each of its Arabic characters, in order.
type EncodeResult struct {
	Arabic        string
	LocationCount int
	Fragments     []string
}

type options struct {
	corpusSource io.Reader
	maxHarfs     int
}

// Option configures New.
type Option func(*options)

// WithMaxHarfs overrides the default cap on accumulated Arabic
// characters per candidate encoding (see encode.DefaultMaxHarfs). Pass 0
// for no cap.
func WithMaxHarfs(n int) Option {
	return func(o *options) { o.maxHarfs = n }
}

// WithCorpusReader replaces the embedded development fixture with a
// corpus read from r, in the same tab-separated format (see
// corpus.Parse). Production deployments supply the canonical corpus
// this way rather than by re-embedding it into the binary.
func WithCorpusReader(r io.Reader) Option {
	return func(o *options) { o.corpusSource = r }
}

// WithConfig applies cfg.MaxHarfs, using encode.DefaultMaxHarfs when it
// is zero. cfg.CorpusPath is not opened here (see Config.CorpusPath).
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.maxHarfs = cfg.MaxHarfs
		if o.maxHarfs == 0 {
			o.maxHarfs = encode.DefaultMaxHarfs
		}
	}
}

// New builds an Engine from the given options, constructing the
// generalized suffix tree over every word-suffix of the corpus. This is
// the expensive step (proportional to corpus size); build one Engine and
// reuse it rather than calling New per query.
func New(opts ...Option) (*Engine, error) {
	o := options{maxHarfs: encode.DefaultMaxHarfs}
	for _, opt := range opts {
		opt(&o)
	}

	var c *corpus.Corpus
	var err error
	if o.corpusSource != nil {
		c, err = corpus.Parse(o.corpusSource)
	} else {
		c, err = corpus.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("quranize: %w", err)
	}

	tree := suffixtree.New()
	for _, a := range c.All() {
		mystery := c.IsMystery(a.Index)
		for _, ws := range suffixtree.WordSuffixes(a.Text) {
			tree.Insert(suffixtree.Data{Index: a.Index, Offset: ws.Offset}, ws.Text, mystery)
		}
	}

	return &Engine{corpus: c, tree: tree, maxHarfs: o.maxHarfs}, nil
}

// Encode reverse-transliterates input, returning every Arabic substring
// found in the corpus that input could plausibly romanize, in both
// normal and mystery-letter modes, deduplicated.
func (e *Engine) Encode(input string) []EncodeResult {
	normal := normalize.Normal(input)
	mystery := normalize.Mystery(input)

	seen := make(map[string]bool)
	var out []EncodeResult
	add := func(candidates []encode.Result) {
		for _, c := range candidates {
			if !seen[c.Arabic] {
				seen[c.Arabic] = true
				out = append(out, EncodeResult{
					Arabic:        c.Arabic,
					LocationCount: c.LocationCount,
					Fragments:     c.Fragments,
				})
			}
		}
	}

	add(encode.Search(e.tree, normal, encode.Normal, e.maxHarfs))
	add(encode.Search(e.tree, mystery, encode.Mystery, e.maxHarfs))
	return out
}

// Find returns every location in the corpus where arabic occurs at a
// word boundary.
func (e *Engine) Find(arabic string) []Location {
	data := encode.Find(e.tree, arabic)
	out := make([]Location, 0, len(data))
	for _, d := range data {
		a, ok := e.corpus.Aya(d.Index)
		if !ok {
			continue
		}
		out = append(out, Location{Sura: a.Sura, Aya: a.Aya, Offset: d.Offset})
	}
	return out
}

// Aya returns the i'th aya in corpus order.
func (e *Engine) Aya(i int) (corpus.Aya, bool) {
	return e.corpus.Aya(i)
}

// AyasByPage returns every aya on the given page.
func (e *Engine) AyasByPage(page int) []corpus.Aya {
	return e.corpus.AyasByPage(page)
}

// AyaBySuraAya returns the aya identified by its sura and aya numbers.
func (e *Engine) AyaBySuraAya(sura, aya int) (corpus.Aya, bool) {
	return e.corpus.AyaBySuraAya(sura, aya)
}
