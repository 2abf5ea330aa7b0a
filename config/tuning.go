package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Satisfaction108/Burrs-io-sub000/game"
)

// LoadTuning overlays a TOML file onto the default game config. An empty path
// returns the defaults. Keys the file sets but the config does not know are an
// error, so typos do not go unnoticed.
func LoadTuning(path string) (game.Config, error) {
	cfg := game.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return game.Config{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return game.Config{}, fmt.Errorf("tuning %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return cfg, nil
}
