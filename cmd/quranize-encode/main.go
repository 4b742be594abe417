// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quranize-encode reverse-transliterates Latin-script lines of
// text read from stdin (or a file argument) into candidate Arabic
// substrings, one result set per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/harflab/quranize/cmd/common"
	"github.com/harflab/quranize/quranize"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [input] [output]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var (
	configPath = flag.String("config", "", "TOML configuration file (see quranize.Config)")
	corpusPath = flag.String("corpus", "", "corpus file, tab-separated sura/aya/page/mystery/text (default: built-in fixture)")
)

func main() {
	flag.Parse()

	if flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}

	var opts []quranize.Option

	if *configPath != "" {
		f, err := os.Open(*configPath)
		common.ExitIfError("Cannot open configuration file", err)
		cfg, err := quranize.ParseConfig(f)
		f.Close()
		common.ExitIfError("Cannot parse configuration file", err)
		opts = append(opts, quranize.WithConfig(cfg))
	}

	if *corpusPath != "" {
		f, err := os.Open(*corpusPath)
		common.ExitIfError("Cannot open corpus file", err)
		defer f.Close()
		opts = append(opts, quranize.WithCorpusReader(f))
	}

	engine, err := quranize.New(opts...)
	common.ExitIfError("Cannot build engine", err)

	inputFile := common.FileOrStdin(flag.Args(), 0)
	defer inputFile.Close()

	outputFile := common.FileOrStdout(flag.Args(), 1)
	defer outputFile.Close()

	writer := bufio.NewWriter(outputFile)
	defer writer.Flush()

	scanner := bufio.NewScanner(inputFile)
	for scanner.Scan() {
		line := scanner.Text()
		results := engine.Encode(line)
		if len(results) == 0 {
			fmt.Fprintf(writer, "%s\t(no match)\n", line)
			continue
		}
		for _, r := range results {
			fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", line, r.Arabic, r.LocationCount, strings.Join(r.Fragments, "-"))
		}
	}
	common.ExitIfError("Error reading input", scanner.Err())
}
