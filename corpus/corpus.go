// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus loads the fixed text corpus that the rest of this
// module builds its suffix tree and location tables from: one Arabic
// aya (verse) per record, tagged with its sura, aya and page numbers
// and whether it is one of the mystery-letter (huruf muqatta'at) ayat.
//
// The canonical 6236-aya corpus and its page layout are an externally
// supplied asset (see the teacher's cmd/common/config.go for the
// analogous "the model is data, not code" stance); this package embeds
// only a small internally consistent fixture for development and
// testing, following the data/embed.go go:embed idiom used elsewhere
// in the retrieved example pack.
package corpus

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidCorpus is wrapped by every error Parse returns while
// rejecting malformed corpus data.
var ErrInvalidCorpus = errors.New("corpus: invalid corpus data")

//go:embed testdata/fixture.tsv
var fixture []byte

// Aya is a single verse as stored in the corpus, already basmala-trimmed
// and ready for suffix-tree insertion.
type Aya struct {
	// Index is the aya's position in corpus order, counting from 0.
	// This is the value a suffixtree.Data.Index refers back to.
	Index int
	Sura  int
	Aya   int
	Page  int
	Text  string
}

// Corpus is an immutable, ordered sequence of ayat plus the lookup
// tables derived from it.
type Corpus struct {
	ayat           []Aya
	suraStarts     []int // suraStarts[s-1] is the Index of sura s's first aya
	pageOffsets    []int // pageOffsets[p-1] is the Index of page p's first aya
	mysteryIndices map[int]bool
}

// Default parses and returns the embedded development fixture.
func Default() (*Corpus, error) {
	return Parse(bytes.NewReader(fixture))
}

// Parse reads tab-separated records of the form
//
//	sura	aya	page	mystery	text
//
// in increasing (sura, aya) order, applying the basmala-trim rule to
// each record's text, and returns the resulting Corpus.
func Parse(r io.Reader) (*Corpus, error) {
	c := &Corpus{mysteryIndices: make(map[int]bool)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: line %d: want 5 tab-separated fields, got %d", ErrInvalidCorpus, lineNo, len(fields))
		}

		sura, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: sura: %v", ErrInvalidCorpus, lineNo, err)
		}
		aya, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: aya: %v", ErrInvalidCorpus, lineNo, err)
		}
		page, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: page: %v", ErrInvalidCorpus, lineNo, err)
		}
		mystery := fields[3] == "1"
		text := trimBasmala(sura, aya, fields[4])
		if text == "" {
			return nil, fmt.Errorf("%w: line %d: empty aya text after basmala trim", ErrInvalidCorpus, lineNo)
		}

		idx := len(c.ayat)
		if err := c.recordBoundaries(sura, page, idx); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCorpus, lineNo, err)
		}
		if mystery {
			c.mysteryIndices[idx] = true
		}
		c.ayat = append(c.ayat, Aya{Index: idx, Sura: sura, Aya: aya, Page: page, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCorpus, err)
	}
	if len(c.ayat) == 0 {
		return nil, fmt.Errorf("%w: no ayat", ErrInvalidCorpus)
	}
	return c, nil
}

// trimBasmala drops the embedded basmala (the opening formula "In the
// name of God, the Merciful, the Compassionate", four space-separated
// words) from the first aya of every sura except sura 1 (Al-Fatihah,
// where the basmala is itself the first aya) and sura 9 (At-Tawbah,
// which opens without one).
func trimBasmala(sura, aya int, text string) string {
	if sura == 1 || sura == 9 || aya != 1 {
		return text
	}
	words := strings.Fields(text)
	if len(words) < 4 {
		return text
	}
	return strings.Join(words[4:], " ")
}

// recordBoundaries extends suraStarts/pageOffsets the first time a new
// sura or page number is seen, and rejects out-of-order input.
func (c *Corpus) recordBoundaries(sura, page, idx int) error {
	switch {
	case len(c.suraStarts) == 0:
		if sura != 1 {
			return fmt.Errorf("corpus must start at sura 1, got sura %d", sura)
		}
		c.suraStarts = append(c.suraStarts, idx)
	case sura == len(c.suraStarts):
		// still inside the current sura
	case sura == len(c.suraStarts)+1:
		c.suraStarts = append(c.suraStarts, idx)
	default:
		return fmt.Errorf("sura numbers must increase by 0 or 1, got %d after %d", sura, len(c.suraStarts))
	}

	switch {
	case len(c.pageOffsets) == 0:
		if page != 1 {
			return fmt.Errorf("corpus must start at page 1, got page %d", page)
		}
		c.pageOffsets = append(c.pageOffsets, idx)
	case page == len(c.pageOffsets):
		// still inside the current page
	case page == len(c.pageOffsets)+1:
		c.pageOffsets = append(c.pageOffsets, idx)
	default:
		return fmt.Errorf("page numbers must increase by 0 or 1, got %d after %d", page, len(c.pageOffsets))
	}
	return nil
}

// Len returns the number of ayat in the corpus.
func (c *Corpus) Len() int {
	return len(c.ayat)
}

// Aya returns the i'th aya in corpus order.
func (c *Corpus) Aya(i int) (Aya, bool) {
	if i < 0 || i >= len(c.ayat) {
		return Aya{}, false
	}
	return c.ayat[i], true
}

// All returns every aya in corpus order. The caller must not mutate the
// returned slice.
func (c *Corpus) All() []Aya {
	return c.ayat
}

// IsMystery reports whether the aya at corpus index i is one of the
// mystery-letter (huruf muqatta'at) ayat.
func (c *Corpus) IsMystery(i int) bool {
	return c.mysteryIndices[i]
}

// SuraCount returns the number of suras represented in the corpus.
func (c *Corpus) SuraCount() int {
	return len(c.suraStarts)
}

// PageCount returns the number of pages represented in the corpus.
func (c *Corpus) PageCount() int {
	return len(c.pageOffsets)
}

// AyaBySuraAya looks up an aya by its (sura, aya) numbers, jumping to
// the sura's first aya via the sura boundary table and scanning only
// that sura's ayat: a feature the original Rust implementation's
// AyaGetter offered that the pure suffix-tree search does not.
func (c *Corpus) AyaBySuraAya(sura, aya int) (Aya, bool) {
	if sura < 1 || sura > len(c.suraStarts) {
		return Aya{}, false
	}
	start := c.suraStarts[sura-1]
	end := len(c.ayat)
	if sura < len(c.suraStarts) {
		end = c.suraStarts[sura]
	}
	for i := start; i < end; i++ {
		if c.ayat[i].Aya == aya {
			return c.ayat[i], true
		}
	}
	return Aya{}, false
}

// AyasByPage returns every aya on the given page, in corpus order.
func (c *Corpus) AyasByPage(page int) []Aya {
	if page < 1 || page > len(c.pageOffsets) {
		return nil
	}
	start := c.pageOffsets[page-1]
	end := len(c.ayat)
	if page < len(c.pageOffsets) {
		end = c.pageOffsets[page]
	}
	return c.ayat[start:end]
}

// SuraOf returns the sura number that the aya at corpus index i belongs
// to, using a binary search over the sura boundary table.
func (c *Corpus) SuraOf(i int) (int, bool) {
	if i < 0 || i >= len(c.ayat) {
		return 0, false
	}
	s := sort.Search(len(c.suraStarts), func(k int) bool { return c.suraStarts[k] > i }) - 1
	if s < 0 {
		return 0, false
	}
	return s + 1, true
}
