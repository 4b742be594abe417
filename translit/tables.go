// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package translit holds the static, pure transliteration tables that map
// a single Arabic character to the Latin fragments that could plausibly
// romanize it.
//
// The three functions here (Base, Context and Mystery) are total and
// referentially transparent: given the same arguments they always return
// the same fragments and never consult any mutable state. Base and Context are combined by the encoder's "normal mode"
// search; Mystery powers the separate "spelled-out letter name" search
// used for huruf muqatta'at (the isolated mystery letters that open some
// surahs).
package translit

// Arabic code points consumed by the tables below. Named the way the
// Unicode Arabic block names them, mirroring how citar's model package
// names its domain constants (Tag, Unigram, ...) after the concept they
// represent rather than a bare rune literal.
const (
	Space = ' '

	LetterHamza          = 'ء'
	LetterAlefMaddaAbove = 'آ'
	LetterAlefHamzaAbove = 'أ'
	LetterWawHamzaAbove  = 'ؤ'
	LetterAlefHamzaBelow = 'إ'
	LetterYehHamzaAbove  = 'ئ'
	LetterAlef           = 'ا'
	LetterBeh            = 'ب'
	LetterTehMarbuta     = 'ة'
	LetterTeh            = 'ت'
	LetterTheh           = 'ث'
	LetterJeem           = 'ج'
	LetterHah            = 'ح'
	LetterKhah           = 'خ'
	LetterDal            = 'د'
	LetterThal           = 'ذ'
	LetterReh            = 'ر'
	LetterZain           = 'ز'
	LetterSeen           = 'س'
	LetterSheen          = 'ش'
	LetterSad            = 'ص'
	LetterDad            = 'ض'
	LetterTah            = 'ط'
	LetterZah            = 'ظ'
	LetterAin            = 'ع'
	LetterGhain          = 'غ'
	Tatweel              = 'ـ'
	LetterFeh            = 'ف'
	LetterQaf            = 'ق'
	LetterKaf            = 'ك'
	LetterLam            = 'ل'
	LetterMeem           = 'م'
	LetterNoon           = 'ن'
	LetterHeh            = 'ه'
	LetterWaw            = 'و'
	LetterAlefMaksura    = 'ى'
	LetterYeh            = 'ي'
	Fathatan             = 'ً'
	Dammatan             = 'ٌ'
	Kasratan             = 'ٍ'
	Fatha                = 'َ'
	Damma                = 'ُ'
	Kasra                = 'ِ'
	Shadda               = 'ّ'
	HamzaAbove           = 'ٔ'
	LetterSuperscriptAlef = 'ٰ'
	EmptyCentreLowStop   = '۪' // U+06EA, Qur'anic annotation mark
)

var empty = []string{""}

// Base returns the plausible Latin fragments for a single Arabic
// character, independent of context. Space maps to the empty fragment so
// that word boundaries in the corpus never force a literal space in the
// input. Characters outside this table (the remaining Qur'anic
// annotation marks) are silent: they contribute no Latin text of their
// own, matching the grounding source's catch-all arm.
func Base(c rune) []string {
	switch c {
	case Space:
		return empty

	case LetterHamza:
		return []string{"", "'", "k"}
	case LetterAlefMaddaAbove:
		return []string{"a", "aa"}
	case LetterAlefHamzaAbove:
		return []string{"", "'", "k"}
	case LetterWawHamzaAbove:
		return []string{"", "'", "k"}
	case LetterAlefHamzaBelow:
		return []string{"", "'", "k"}
	case LetterYehHamzaAbove:
		return []string{"", "'", "k"}
	case LetterAlef:
		return []string{"a", "aa", "o", "oo", ""}
	case LetterBeh:
		return []string{"b"}
	case LetterTehMarbuta:
		return []string{"h", "t"}
	case LetterTeh:
		return []string{"t"}
	case LetterTheh:
		return []string{"ts", "s"}
	case LetterJeem:
		return []string{"j"}
	case LetterHah:
		return []string{"h", "kh", "ch"}
	case LetterKhah:
		return []string{"kh"}
	case LetterDal:
		return []string{"d"}
	case LetterThal:
		return []string{"d", "dh", "dz"}
	case LetterReh:
		return []string{"r"}
	case LetterZain:
		return []string{"z"}
	case LetterSeen:
		return []string{"s"}
	case LetterSheen:
		return []string{"s", "sy", "sh"}
	case LetterSad:
		return []string{"s", "sh"}
	case LetterDad:
		return []string{"d", "dh", "dz"}
	case LetterTah:
		return []string{"t", "th"}
	case LetterZah:
		return []string{"d", "dh", "dz"}
	case LetterAin:
		return []string{"", "'", "k"}
	case LetterGhain:
		return []string{"g", "gh"}

	case Tatweel:
		return empty

	case LetterFeh:
		return []string{"f"}
	case LetterQaf:
		return []string{"k", "q"}
	case LetterKaf:
		return []string{"k"}
	case LetterLam:
		return []string{"l"}
	case LetterMeem:
		return []string{"m"}
	case LetterNoon:
		return []string{"n"}
	case LetterHeh:
		return []string{"h"}
	case LetterWaw:
		return []string{"w", "u", "uu"}
	case LetterAlefMaksura:
		return []string{"a", "aa", "y", "i", "ii"}
	case LetterYeh:
		return []string{"y", "i", "ii"}

	case Fathatan:
		return []string{"an", "on", ""}
	case Dammatan:
		return []string{"un"}
	case Kasratan:
		return []string{"in"}
	case Fatha:
		return []string{"a", "o"}
	case Damma:
		return []string{"u"}
	case Kasra:
		return []string{"i"}
	case Shadda:
		return nil

	case HamzaAbove:
		return []string{"'", "a"}
	case LetterSuperscriptAlef:
		return []string{"a", "aa", "o", "oo"}

	default:
		return empty
	}
}

// Context returns additional Latin fragments for character c, given the
// Arabic character prev that immediately precedes it in the corpus (or no
// value when c opens a word). This captures romanizations that only make
// sense relative to the previous letter: the silent alef of the definite
// article, the gemination rule for shadda (which reuses prev's own
// fragments, whatever prev happens to be — a diacritic or a consonant),
// and a handful of dialectal readings.
func Context(prev rune, hasPrev bool, c rune) []string {
	if c == Shadda {
		if hasPrev {
			return Base(prev)
		}
		return nil
	}

	if !hasPrev {
		if c == LetterAlef {
			return []string{"u", "i"}
		}
		return nil
	}

	switch {
	case prev == Damma && c == LetterWaw:
		return empty
	case prev == EmptyCentreLowStop && c == LetterAlefMaksura:
		return empty
	case prev == Fathatan && c == LetterAlefMaksura:
		return empty
	case prev == Kasra && c == LetterLam:
		return empty
	case prev == LetterAlefMaksura && c == LetterSuperscriptAlef:
		return empty
	case prev == LetterAlef && c == LetterLam:
		return empty
	case prev == LetterReh && c == EmptyCentreLowStop:
		return []string{"e", "ee"}
	case prev == LetterJeem && c == LetterReh:
		return []string{"re", "ree"}
	}

	return nil
}

// Mystery returns the spelled-out Latin name of an Arabic letter, used
// only by the encoder's mystery-letter search mode.
func Mystery(c rune) []string {
	switch c {
	case LetterAlef:
		return []string{"alif"}
	case LetterBeh:
		return []string{"ba"}
	case LetterTeh:
		return []string{"ta"}
	case LetterTheh:
		return []string{"tsa", "sa"}
	case LetterJeem:
		return []string{"jim"}
	case LetterHah:
		return []string{"ha", "cha"}
	case LetterKhah:
		return []string{"kho"}
	case LetterDal:
		return []string{"dal"}
	case LetterThal:
		return []string{"dzal", "dhal"}
	case LetterReh:
		return []string{"ro"}
	case LetterZain:
		return []string{"za"}
	case LetterSeen:
		return []string{"sin"}
	case LetterSheen:
		return []string{"syin", "shin"}
	case LetterSad:
		return []string{"shod", "shot", "sod", "sot"}
	case LetterDad:
		return []string{"dhod", "dhot", "dzod", "dzot", "dod", "dot"}
	case LetterTah:
		return []string{"tho", "to"}
	case LetterZah:
		return []string{"dho", "dzo", "do"}
	case LetterAin:
		return []string{"'ain", "ain"}
	case LetterGhain:
		return []string{"ghoin", "goin", "ghin", "gin"}
	case LetterFeh:
		return []string{"fa"}
	case LetterQaf:
		return []string{"qof", "kof"}
	case LetterKaf:
		return []string{"kaf"}
	case LetterLam:
		return []string{"lam"}
	case LetterMeem:
		return []string{"mim"}
	case LetterNoon:
		return []string{"nun"}
	case LetterHeh:
		return []string{"ha"}
	case LetterWaw:
		return []string{"wawu", "wau"}
	case LetterYeh:
		return []string{"ya"}
	default:
		return nil
	}
}
