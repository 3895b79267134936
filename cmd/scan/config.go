package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	scansion "github.com/kylepjohnson/ScansionPublic"
)

// fileConfig mirrors the TOML configuration file. ElideFinalM is a
// pointer so an absent key keeps the default (on) while an explicit
// false turns it off.
type fileConfig struct {
	ElideFinalM         *bool  `toml:"elide_final_m"`
	MuteLiquidLengthens bool   `toml:"mute_liquid_lengthens"`
	LongMark            string `toml:"long_mark"`
	ShortMark           string `toml:"short_mark"`
	Workers             int    `toml:"workers"`
}

type cliConfig struct {
	Scanner scansion.Config
	Workers int
}

// loadConfig returns the defaults, folded under the TOML file at path
// when one is given.
func loadConfig(path string) (cliConfig, error) {
	cfg := cliConfig{Scanner: scansion.DefaultConfig(), Workers: 4}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cliConfig{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cliConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ElideFinalM != nil {
		cfg.Scanner.ElideFinalM = *fc.ElideFinalM
	}
	cfg.Scanner.MuteLiquidLengthens = fc.MuteLiquidLengthens
	if fc.LongMark != "" {
		cfg.Scanner.LongMark = []rune(fc.LongMark)[0]
	}
	if fc.ShortMark != "" {
		cfg.Scanner.ShortMark = []rune(fc.ShortMark)[0]
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	return cfg, nil
}
