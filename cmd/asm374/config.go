package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/pgaskin/ASM374/feats"
)

// Config is the contents of the configuration file. Command-line flags take precedence over it.
type Config struct {
	Features []string `toml:"features"`  // instruction groups, all if empty
	Explain  bool     `toml:"explain"`   // explain text instead of assembling it
	Check    bool     `toml:"check"`     // check disassembled words
	Layout   bool     `toml:"layout"`    // show the bit layout of disassembled words
	Format   string   `toml:"format"`    // output format for assembled words: hex or bin
	Echo     bool     `toml:"echo"`      // echo failing lines even when interactive
	LogLevel string   `toml:"log_level"` // logrus level
}

// Get the default configuration file path, $XDG_CONFIG_HOME/asm374/config.toml.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "asm374", "config.toml")
}

// Load a configuration file. A missing file is only an error if required is set.
func loadConfig(path string, required bool) (*Config, error) {
	cfg := &Config{Format: "hex", LogLevel: "info"}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Override the configuration with the flags which were explicitly set.
func (cfg *Config) applyFlags(fset *flag.FlagSet) {
	fset.Visit(func(f *flag.Flag) {
		g, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch v := g.Get().(type) {
		case bool:
			switch f.Name {
			case "explain":
				cfg.Explain = v
			case "check":
				cfg.Check = v
			case "layout":
				cfg.Layout = v
			case "echo":
				cfg.Echo = v
			case "v":
				if v {
					cfg.LogLevel = logrus.DebugLevel.String()
				}
			}
		case string:
			switch f.Name {
			case "format":
				cfg.Format = v
			case "features":
				cfg.Features = nil
				for _, name := range strings.Split(v, ",") {
					if name = strings.TrimSpace(name); name != "" {
						cfg.Features = append(cfg.Features, name)
					}
				}
			}
		}
	})
}

// Get the enabled instruction groups.
func (cfg *Config) features() (feats.Feature, error) {
	if len(cfg.Features) == 0 {
		return feats.AllFeatures, nil
	}
	var f feats.Feature
	for _, name := range cfg.Features {
		g, ok := feats.Lookup(name)
		if !ok {
			return 0, fmt.Errorf("unknown instruction group %q (valid: %s)", name, strings.Join(feats.AllFeatures.Names(), ", "))
		}
		f |= g
	}
	return f, nil
}

func (cfg *Config) validate() error {
	switch cfg.Format {
	case "hex", "bin":
	default:
		return fmt.Errorf("unknown output format %q (valid: hex, bin)", cfg.Format)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	_, err := cfg.features()
	return err
}
