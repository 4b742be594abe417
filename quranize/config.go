// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quranize

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/harflab/quranize/encode"
)

// Config is the TOML-decodable settings an Engine can be built from,
// following the shape of the teacher's CitarConfig
// (cmd/common/config.go): a flat struct decoded wholesale with
// BurntSushi/toml, with zero values filled in with sane defaults after
// decoding rather than scattered throughout the struct's usage.
type Config struct {
	// MaxHarfs caps the number of Arabic characters a single candidate
	// encoding may accumulate during Encode. Zero or absent falls back
	// to encode.DefaultMaxHarfs.
	MaxHarfs int `toml:"max_harfs"`

	// CorpusPath, if set, names a corpus file on disk in the format
	// corpus.Parse expects. The caller is responsible for opening it and
	// passing the result to WithCorpusReader; Config only carries the
	// path, the way CitarConfig carries a model path rather than an
	// open file.
	CorpusPath string `toml:"corpus_path"`
}

// ParseConfig decodes a TOML document from r into a Config, applying
// defaults to any field left unset.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeReader(r, &cfg); err != nil {
		return Config{}, fmt.Errorf("quranize: parsing config: %w", err)
	}
	if cfg.MaxHarfs == 0 {
		cfg.MaxHarfs = encode.DefaultMaxHarfs
	}
	return cfg, nil
}

// MustParseConfig is ParseConfig for callers, such as command-line
// tools at startup, that have no sensible recovery from a malformed
// config file.
func MustParseConfig(r io.Reader) Config {
	cfg, err := ParseConfig(r)
	if err != nil {
		panic(err)
	}
	return cfg
}
