// Package config loads the busdemo TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Locking mode names accepted in the config file.
const (
	LockingMutex = "mutex"
	LockingNone  = "none"
)

// ErrUnknownLocking is returned for an unrecognized locking mode.
var ErrUnknownLocking = errors.New("unknown locking mode")

// Config is the busdemo configuration.
type Config struct {
	// Locking selects the bus exclusion policy: "mutex" or "none".
	Locking string `toml:"locking"`

	Demo  DemoConfig  `toml:"demo"`
	Watch WatchConfig `toml:"watch"`
}

// DemoConfig controls the attack-event scenario.
type DemoConfig struct {
	// BaseDamage is the damage the published event starts with.
	BaseDamage int `toml:"base_damage"`

	// AttackBonus is what the player's handler adds on top.
	AttackBonus int `toml:"attack_bonus"`
}

// WatchConfig controls the optional file-watch producer. An empty path
// disables it.
type WatchConfig struct {
	Path string `toml:"path"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Locking: LockingMutex,
		Demo: DemoConfig{
			BaseDamage:  0,
			AttackBonus: 150,
		},
	}
}

// Load reads a TOML configuration from path. A missing file is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Locking {
	case LockingMutex, LockingNone:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLocking, c.Locking)
	}
}
