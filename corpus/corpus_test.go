// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corpus

import (
	"strings"
	"testing"
)

func mustDefault(t *testing.T) *Corpus {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	return c
}

func TestDefaultFixtureShape(t *testing.T) {
	c := mustDefault(t)

	if got, want := c.Len(), 14; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := c.SuraCount(), 6; got != want {
		t.Errorf("SuraCount() = %d, want %d", got, want)
	}
	if got, want := c.PageCount(), 3; got != want {
		t.Errorf("PageCount() = %d, want %d", got, want)
	}
}

func TestBasmalaTrim(t *testing.T) {
	c := mustDefault(t)

	fatiha1, ok := c.AyaBySuraAya(1, 1)
	if !ok {
		t.Fatalf("AyaBySuraAya(1, 1) not found")
	}
	if !strings.HasPrefix(fatiha1.Text, "بِسمِ") {
		t.Errorf("sura 1 aya 1 must keep its basmala, got %q", fatiha1.Text)
	}

	mystery, ok := c.AyaBySuraAya(2, 1)
	if !ok {
		t.Fatalf("AyaBySuraAya(2, 1) not found")
	}
	if mystery.Text != "الم" {
		t.Errorf("sura 2 aya 1 text = %q, want basmala trimmed to %q", mystery.Text, "الم")
	}

	ikhlas, ok := c.AyaBySuraAya(5, 1)
	if !ok {
		t.Fatalf("AyaBySuraAya(5, 1) not found")
	}
	if strings.Contains(ikhlas.Text, "بِسمِ") {
		t.Errorf("sura 5 aya 1 still contains the basmala: %q", ikhlas.Text)
	}
}

func TestMysteryIndices(t *testing.T) {
	c := mustDefault(t)

	alifLamMim, ok := c.AyaBySuraAya(2, 1)
	if !ok {
		t.Fatalf("AyaBySuraAya(2, 1) not found")
	}
	if !c.IsMystery(alifLamMim.Index) {
		t.Errorf("aya %d (%q) should be marked mystery", alifLamMim.Index, alifLamMim.Text)
	}

	fatiha1, ok := c.AyaBySuraAya(1, 1)
	if !ok {
		t.Fatalf("AyaBySuraAya(1, 1) not found")
	}
	if c.IsMystery(fatiha1.Index) {
		t.Errorf("aya %d (%q) should not be marked mystery", fatiha1.Index, fatiha1.Text)
	}
}

func TestAyasByPage(t *testing.T) {
	c := mustDefault(t)

	page2 := c.AyasByPage(2)
	if len(page2) != 3 {
		t.Fatalf("AyasByPage(2) = %d ayat, want 3", len(page2))
	}
	for _, a := range page2 {
		if a.Page != 2 {
			t.Errorf("AyasByPage(2) returned an aya tagged page %d: %+v", a.Page, a)
		}
	}

	if got := c.AyasByPage(0); got != nil {
		t.Errorf("AyasByPage(0) = %+v, want nil", got)
	}
	if got := c.AyasByPage(4); got != nil {
		t.Errorf("AyasByPage(4) = %+v, want nil", got)
	}
}

func TestSuraOf(t *testing.T) {
	c := mustDefault(t)

	last, ok := c.Aya(c.Len() - 1)
	if !ok {
		t.Fatalf("Aya(Len()-1) not found")
	}
	sura, ok := c.SuraOf(last.Index)
	if !ok || sura != 6 {
		t.Errorf("SuraOf(%d) = (%d, %v), want (6, true)", last.Index, sura, ok)
	}

	sura, ok = c.SuraOf(0)
	if !ok || sura != 1 {
		t.Errorf("SuraOf(0) = (%d, %v), want (1, true)", sura, ok)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name, data string
	}{
		{"wrong field count", "1\t1\t1\t0\n"},
		{"non-numeric sura", "x\t1\t1\t0\ttext\n"},
		{"does not start at sura 1", "2\t1\t1\t0\ttext\n"},
		{"does not start at page 1", "1\t1\t2\t0\ttext\n"},
		{"sura skips a number", "1\t1\t1\t0\ttext\n3\t1\t1\t0\ttext\n"},
		{"empty after basmala trim", "2\t1\t1\t1\tبِسمِ اللَّهِ الرَّحمٰنِ الرَّحيمِ\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.data)); err == nil {
				t.Errorf("Parse(%q) succeeded, want an error", tc.data)
			}
		})
	}
}
