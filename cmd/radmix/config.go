package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/radmix"
)

// config holds the resolved CLI settings.
type config struct {
	Params  radmix.Params
	Output  string
	Filter  radmix.Filter
	Workers int
}

func defaultConfig() config {
	return config{
		Params:  radmix.DefaultParams(),
		Output:  defaultOutput,
		Filter:  radmix.FilterCatmullRom,
		Workers: 0,
	}
}

// config.toml key mapping to CLI settings.
type fileConfig struct {
	CircleSize float64 `toml:"circle_size"`
	EdgeFuzz   float64 `toml:"edge_fuzz"`
	Output     string  `toml:"output"`
	Filter     string  `toml:"filter"`
	Workers    int     `toml:"workers"`
}

// loadConfig overlays the keys present in the TOML file at path onto cfg.
func loadConfig(path string, cfg config) (config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("%w: %s: %w", errConfig, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("%w: %s: unknown key %q", errConfig, path, undecoded[0].String())
	}

	if meta.IsDefined("circle_size") {
		cfg.Params.CircleSize = raw.CircleSize
	}
	if meta.IsDefined("edge_fuzz") {
		cfg.Params.EdgeFuzz = raw.EdgeFuzz
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("filter") {
		f, ok := radmix.ParseFilter(strings.TrimSpace(raw.Filter))
		if !ok {
			return config{}, fmt.Errorf("%w: %s: unsupported filter %q (expected catmullrom or bilinear)",
				errConfig, path, raw.Filter)
		}
		cfg.Filter = f
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}

	if cfg.Output == "" {
		return config{}, fmt.Errorf("%w: %s: output must not be empty", errConfig, path)
	}
	if err := cfg.Params.Validate(); err != nil {
		return config{}, fmt.Errorf("%w: %s: %w", errConfig, path, err)
	}
	return cfg, nil
}
