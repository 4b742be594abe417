// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normalize

import "testing"

func TestNormal(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain", "bismi", "bismi"},
		{"apostrophe and diacritic-shaped input", "'aalimul ghoibi", "'aalimulghoibi"},
		{"mixed case", "Qul A'udzu", "qula'udzu"},
		{"internal spaces collapse away", "bismilla hirrohma nirrohiim", "bismillahirrohmanirrohiim"},
		{"digits and punctuation dropped", "1+2=3", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normal(tc.in); got != tc.want {
				t.Errorf("Normal(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMystery(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"no run", "alif", "alif"},
		{"double vowel", "laam", "lam"},
		{"triple vowel", "laaam", "lam"},
		{"quadruple vowel", "laaaam", "lam"},
		{"mystery letters phrase", "kaaaf haa yaa aiiin shoood", "kafhayaainshod"},
		{"vowel run does not cross a word boundary", "kaaaf haa yaa 'aiiin shoood", "kafhaya'ainshod"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mystery(tc.in); got != tc.want {
				t.Errorf("Mystery(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
