// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quranize-find locates an Arabic substring, read as the
// command's sole argument, in the corpus and prints every occurrence as
// a compact sura:aya citation list.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/harflab/quranize/cmd/common"
	"github.com/harflab/quranize/quranize"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] arabic-substring\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var corpusPath = flag.String("corpus", "", "corpus file, tab-separated sura/aya/page/mystery/text (default: built-in fixture)")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	var opts []quranize.Option
	if *corpusPath != "" {
		f, err := os.Open(*corpusPath)
		common.ExitIfError("Cannot open corpus file", err)
		defer f.Close()
		opts = append(opts, quranize.WithCorpusReader(f))
	}

	engine, err := quranize.New(opts...)
	common.ExitIfError("Cannot build engine", err)

	locs := engine.Find(flag.Arg(0))
	if len(locs) == 0 {
		fmt.Println("(no match)")
		return
	}
	fmt.Println(quranize.CiteLocations(locs))
}
