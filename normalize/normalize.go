// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normalize turns free-form user input into the two canonical
// Latin forms the encoder searches against.
package normalize

import "unicode"

// Normal lowercases s and keeps only 'a'-'z' and apostrophe, dropping
// everything else (spaces included): the encoder never needs an explicit
// word boundary on the Latin side, since every Arabic space maps to the
// empty fragment.
func Normal(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if c, ok := asciiLetterOrApostrophe(r); ok {
			out = append(out, c)
		}
	}
	return string(out)
}

// Mystery is like Normal, but additionally collapses a run of two or more
// consecutive identical long-vowel letters ('a', 'i', 'u', 'o') into a
// single occurrence before word spaces are dropped, so the merge never
// reaches across a word boundary: "yaa aiiin" collapses to "yaain", not
// "yain". This mirrors how a romanized mystery-letter name is often
// stretched out for emphasis or clarity ("kaaaf haa yaa" for "kaf ha ya")
// without changing which letter it names.
func Mystery(s string) string {
	kept := make([]rune, 0, len(s))
	for _, r := range s {
		if c, ok := asciiLetterApostropheOrSpace(r); ok {
			kept = append(kept, c)
		}
	}

	out := kept[:0:0]
	for _, c := range kept {
		if n := len(out); n > 0 && out[n-1] == c && isLongVowel(c) {
			continue
		}
		out = append(out, c)
	}

	final := make([]rune, 0, len(out))
	for _, c := range out {
		if c != ' ' {
			final = append(final, c)
		}
	}
	return string(final)
}

func asciiLetterOrApostrophe(r rune) (rune, bool) {
	c, ok := asciiLetterApostropheOrSpace(r)
	if ok && c == ' ' {
		return 0, false
	}
	return c, ok
}

func asciiLetterApostropheOrSpace(r rune) (rune, bool) {
	c := unicode.ToLower(r)
	switch {
	case c >= 'a' && c <= 'z':
		return c, true
	case c == '\'':
		return c, true
	case c == ' ':
		return c, true
	default:
		return 0, false
	}
}

func isLongVowel(c rune) bool {
	switch c {
	case 'a', 'i', 'u', 'o':
		return true
	default:
		return false
	}
}
