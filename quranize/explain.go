// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quranize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CiteLocations formats a set of Find locations as a compact,
// human-readable citation list: ayat are grouped by sura, each sura's
// aya numbers deduplicated and sorted, and suras ordered by number, e.g.
//
//	2:1; 5:1,2
//
// for a match found in sura 2 aya 1 and sura 5 ayat 1-2. An empty locs
// returns "".
func CiteLocations(locs []Location) string {
	if len(locs) == 0 {
		return ""
	}

	bySura := make(map[int]map[int]bool)
	for _, l := range locs {
		ayat, ok := bySura[l.Sura]
		if !ok {
			ayat = make(map[int]bool)
			bySura[l.Sura] = ayat
		}
		ayat[l.Aya] = true
	}

	suras := make([]int, 0, len(bySura))
	for s := range bySura {
		suras = append(suras, s)
	}
	sort.Ints(suras)

	parts := make([]string, 0, len(suras))
	for _, s := range suras {
		ayaSet := bySura[s]
		ayat := make([]int, 0, len(ayaSet))
		for a := range ayaSet {
			ayat = append(ayat, a)
		}
		sort.Ints(ayat)

		ayaStrs := make([]string, len(ayat))
		for i, a := range ayat {
			ayaStrs[i] = strconv.Itoa(a)
		}
		parts = append(parts, fmt.Sprintf("%d:%s", s, strings.Join(ayaStrs, ",")))
	}
	return strings.Join(parts, "; ")
}

// Explanation pairs one group of Arabic text with the Latin alphabet
// fragment that romanizes it, as CompressExplanation produces.
type Explanation struct {
	Alphabet string
	Quran    string
}

// isDiacritic reports whether r is one of the combining marks
// CompressExplanation folds backward into the preceding base character's
// group, rather than starting a group of its own: the Arabic harakat
// (U+064B-U+065F), the superscript alef (U+0670), and the small
// high/centre marks used in Qur'anic orthography (U+06EA and
// neighbours).
func isDiacritic(r rune) bool {
	switch {
	case r >= 0x064B && r <= 0x065F:
		return true
	case r == 0x0670:
		return true
	case r >= 0x06D6 && r <= 0x06ED:
		return true
	}
	return false
}

// CompressExplanation folds arabic's per-character romanization
// fragments into groups of consecutive base characters plus their
// trailing diacritics, each paired with the Latin text that produced it.
// len(fragments) must equal the rune count of arabic (the contract
// encode.Result guarantees).
//
// Diacritics merge backward into the most recently finalized group
// rather than starting their own: a character whose fragment is empty
// (a silent letter, such as the definite article's alef) extends the
// currently open group's Arabic text without finalizing it. This is a
// presentation helper for hosts that want to align a transliteration
// with the Arabic text it explains; it is not used by Encode or Find.
func CompressExplanation(arabic string, fragments []string) []Explanation {
	runes := []rune(arabic)
	if len(runes) != len(fragments) || len(runes) == 0 {
		return nil
	}

	var groups []Explanation
	groups = append(groups, Explanation{})

	for i, r := range runes {
		frag := fragments[i]
		top := len(groups) - 1

		switch {
		case top >= 1 && isDiacritic(r):
			groups[top-1].Alphabet += frag
			groups[top-1].Quran += string(r)
		case frag == "":
			groups[top].Quran += string(r)
		default:
			groups[top].Alphabet += frag
			groups[top].Quran += string(r)
			groups = append(groups, Explanation{})
		}
	}

	// Drop the always-empty trailing group left open by the last
	// character.
	if last := len(groups) - 1; groups[last].Alphabet == "" && groups[last].Quran == "" {
		groups = groups[:last]
	}
	return groups
}
