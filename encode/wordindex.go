// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encode

import (
	"github.com/harflab/quranize/corpus"
	"github.com/harflab/quranize/suffixtree"
)

// Lexicon maps a corpus word, verbatim, to every occurrence of that
// exact word at a word boundary. It is a supplement to the suffix tree:
// a single-word lookup the tree can also answer (via Search or Find) but
// only by walking from the root every time, whereas a Lexicon answers it
// with one map access. Useful for tools that repeatedly resolve the
// same handful of words, such as a frequency report.
type Lexicon map[string][]suffixtree.Data

// BuildLexicon scans every aya's text and records the location of each
// of its words.
func BuildLexicon(ayat []corpus.Aya) Lexicon {
	idx := make(Lexicon)
	for _, a := range ayat {
		for _, ws := range suffixtree.WordSuffixes(a.Text) {
			word := firstWord(ws.Text)
			idx[word] = append(idx[word], suffixtree.Data{Index: a.Index, Offset: ws.Offset})
		}
	}
	return idx
}

// firstWord returns the text up to (but not including) the first
// word-separator rune, or all of text if it contains none.
func firstWord(text string) string {
	for i, r := range text {
		if suffixtree.IsSeparator(r) {
			return text[:i]
		}
	}
	return text
}

// WordIndex converts a byte offset within text into a 0-based index of
// the word that starts at that offset, by counting the runs of word
// separators (suffixtree.IsSeparator) that occur strictly before
// byteOffset, so the numbering matches WordSuffixes.
// Restores the original implementation's (sura, aya, word_index)
// location shape as a view derived from the byte-offset contract Find
// uses internally, without changing Find's own semantics.
func WordIndex(text string, byteOffset int) int {
	word := 0
	inRun := false
	for i, r := range text {
		if i >= byteOffset {
			break
		}
		if suffixtree.IsSeparator(r) {
			if !inRun {
				word++
			}
			inRun = true
		} else {
			inRun = false
		}
	}
	return word
}
