// Package config loads the recognizer's optional TOML configuration
// file: an engine name, whether compiled LR tables are cached to disk,
// and whether trace output is emitted. It is grounded on
// internal/tqw's toml.Decode-a-struct-then-validate pattern, trimmed
// from that package's manifest/world-data dispatch down to the single
// flat document this recognizer needs.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Engine names one of the two recognition engines selectable as a
// default.
type Engine string

const (
	EngineEarley Engine = "earley"
	EngineLR     Engine = "lr"
)

// Config is the recognizer's optional on-disk configuration.
type Config struct {
	// Engine names an engine. Load checks that it is EngineEarley or
	// EngineLR; cmd/cfgrec does not read it, since its positional engine
	// argument is always required.
	Engine Engine `toml:"engine"`

	// CacheDir, if non-empty, enables the on-disk LR table cache in the
	// named directory.
	CacheDir string `toml:"cache_dir"`

	// Trace enables per-call trace output to stderr.
	Trace bool `toml:"trace"`
}

// Default is the configuration used when no file is loaded.
func Default() Config {
	return Config{Engine: EngineEarley}
}

// Load reads and parses the TOML configuration file at path. A missing
// file is not an error: Default is returned unchanged, since the
// configuration file itself is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	if cfg.Engine != EngineEarley && cfg.Engine != EngineLR {
		return Config{}, fmt.Errorf("config: engine must be %q or %q, got %q", EngineEarley, EngineLR, cfg.Engine)
	}

	return cfg, nil
}
