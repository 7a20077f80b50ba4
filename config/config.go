// Package config holds the read loop settings.
//
// Settings are resolved in order: defaults, then the YAML file named by
// -config, then the command line flags actually given.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const historyFileName = ".minirepl_history"

type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	ShowIR      bool   `yaml:"show_ir"`
	Rollback    bool   `yaml:"rollback"`
	Verbose     bool   `yaml:"verbose"`
	Banner      bool   `yaml:"banner"`
}

// Default returns the built-in settings. The history file lives in the
// user's home directory, or is disabled when there is none.
func Default() Config {
	cfg := Config{
		Prompt:   "> ",
		Rollback: true,
		Banner:   true,
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		cfg.HistoryFile = filepath.Join(home, historyFileName)
	}
	return cfg
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value, unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }() // Best effort.

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// bind registers one flag per setting, backed by c.
func (c *Config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Prompt, "prompt", c.Prompt, "input prompt")
	fs.StringVar(&c.HistoryFile, "history", c.HistoryFile, "line history file, empty to disable")
	fs.BoolVar(&c.ShowIR, "ir", c.ShowIR, "print the instruction listing after each line")
	fs.BoolVar(&c.Rollback, "rollback", c.Rollback, "drop statements that fault at run time from the session")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "trace each pipeline stage to stderr")
	fs.BoolVar(&c.Banner, "banner", c.Banner, "print the banner on start")
}

// Parse registers the settings flags and -config on fs, parses args and
// returns the resolved settings. Other flags may be registered on fs
// beforehand; positional arguments are left in fs.Args().
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	flags := Default()
	path := fs.String("config", "", "YAML configuration file")
	flags.bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *path != "" {
		var err error
		if cfg, err = Load(*path); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			cfg.Prompt = flags.Prompt
		case "history":
			cfg.HistoryFile = flags.HistoryFile
		case "ir":
			cfg.ShowIR = flags.ShowIR
		case "rollback":
			cfg.Rollback = flags.Rollback
		case "v":
			cfg.Verbose = flags.Verbose
		case "banner":
			cfg.Banner = flags.Banner
		}
	})
	return cfg, nil
}
