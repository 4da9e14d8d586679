// Package config loads the optional pokergrid HCL configuration file.
// A missing file is not an error; every setting has a default.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete application configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
	Sim  SimSettings  `hcl:"sim,block"`
}

// GameSettings control the engine session
type GameSettings struct {
	// Seed fixes the shuffle order; 0 picks one from the clock at startup
	Seed int64 `hcl:"seed,optional"`
}

// UISettings contains terminal interface settings
type UISettings struct {
	LogLevel     string `hcl:"log_level,optional"`
	LogFile      string `hcl:"log_file,optional"`
	ShowEligible bool   `hcl:"show_eligible,optional"`
}

// SimSettings contains defaults for the simulate command
type SimSettings struct {
	Games   int `hcl:"games,optional"`
	Workers int `hcl:"workers,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Seed: 0,
		},
		UI: UISettings{
			LogLevel:     "warn",
			LogFile:      "pokergrid.log",
			ShowEligible: true,
		},
		Sim: SimSettings{
			Games:   1000,
			Workers: 4,
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults
// for a missing file or unset values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	defaults := Default()
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = defaults.UI.LogFile
	}
	if cfg.Sim.Games == 0 {
		cfg.Sim.Games = defaults.Sim.Games
	}
	if cfg.Sim.Workers == 0 {
		cfg.Sim.Workers = defaults.Sim.Workers
	}

	return &cfg, nil
}
