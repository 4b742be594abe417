// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quranize-gendata assembles the tab-separated corpus format
// corpus.Parse expects from two upstream assets: a plain text file with
// one untrimmed aya per line, and a TOML manifest giving the line
// indices where each sura and page begins and which lines are
// mystery-letter ayat. This is the tool that turns the canonical
// 6236-aya text and its metadata tables into the single embeddable
// artifact the rest of this module consumes; the embedded development
// fixture (corpus/testdata/fixture.tsv) was produced by hand at the
// scale of a few ayat, in the same format this tool emits at full scale.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/harflab/quranize/cmd/common"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] manifest.toml ayat.txt\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

// manifest describes the boundaries a flat list of aya lines is cut
// along. Every *_starts/offsets slice is 0-based and gives, for each
// sura/page in order, the line index of its first aya. mystery_indices
// lists the 0-based line indices of huruf-muqatta'at ayat.
type manifest struct {
	SuraStarts     []int `toml:"sura_starts"`
	PageOffsets    []int `toml:"page_offsets"`
	MysteryIndices []int `toml:"mystery_indices"`
}

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	var m manifest
	if _, err := toml.DecodeFile(flag.Arg(0), &m); err != nil {
		common.ExitIfError("Cannot parse manifest", err)
	}

	ayatFile, err := os.Open(flag.Arg(1))
	common.ExitIfError("Cannot open aya text file", err)
	defer ayatFile.Close()

	mystery := make(map[int]bool, len(m.MysteryIndices))
	for _, idx := range m.MysteryIndices {
		mystery[idx] = true
	}

	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	scanner := bufio.NewScanner(ayatFile)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	sura, page, idx := 0, 0, 0
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}

		for sura < len(m.SuraStarts) && m.SuraStarts[sura] <= idx {
			sura++
		}
		for page < len(m.PageOffsets) && m.PageOffsets[page] <= idx {
			page++
		}
		suraNum := sura
		pageNum := page
		aya := idx - m.SuraStarts[suraNum-1] + 1

		mysteryFlag := "0"
		if mystery[idx] {
			mysteryFlag = "1"
		}
		fmt.Fprintf(writer, "%d\t%d\t%d\t%s\t%s\n", suraNum, aya, pageNum, mysteryFlag, text)
		idx++
	}
	common.ExitIfError("Error reading aya text", scanner.Err())
}
