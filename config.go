// config.go loads engine configuration from an optional TOML file,
// grounded on the ambient config layers seen across the retrieval pack
// (FrankyGo-style struct-per-concern config, TermChess's toml loading).

package corechess

import (
	"os"

	"github.com/BurntSushi/toml"
)

// EngineConfig collects the knobs a CLI or embedding program may want to
// override; every field has a sane zero-value-adjacent default so a
// missing config file is not an error.
type EngineConfig struct {
	Search struct {
		MaxDepth   int `toml:"max_depth"`
		MoveTimeMs int `toml:"move_time_ms"`
	} `toml:"search"`

	Hash struct {
		SizeMiB int `toml:"size_mib"`
	} `toml:"hash"`

	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() EngineConfig {
	var c EngineConfig
	c.Search.MaxDepth = 64
	c.Search.MoveTimeMs = 5000
	c.Hash.SizeMiB = 64
	c.Log.Level = "info"
	return c
}

// LoadConfig reads path and overlays it onto DefaultConfig. A missing
// file is not an error: the caller gets defaults back unchanged.
func LoadConfig(path string) (EngineConfig, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
