package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jdb-go/jdb/internal/dbglog"
	"github.com/jdb-go/jdb/internal/xdg"
)

// Defaults is the optional on-disk settings layer read from
// $XDG_CONFIG_HOME/jdb/config.toml, for preferences a user wants to persist
// across sessions instead of retyping as flags every launch. CLI flags
// always take precedence over values loaded here.
type Defaults struct {
	// DisableASLR mirrors Options.DisableASLR.
	DisableASLR bool `toml:"disable_aslr"`
	// Breakpoints lists virtual addresses to breakpoint immediately after
	// every launch, before the inferior runs its first instruction.
	Breakpoints []uint64 `toml:"breakpoints"`
}

// LoadDefaults reads the defaults file if present. A missing file is not an
// error: it simply yields zero-value Defaults.
func LoadDefaults() (Defaults, error) {
	path, err := xdg.ConfigFile(appName, "config.toml")
	if err != nil {
		return Defaults{}, err
	}

	var d Defaults
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Defaults{}, nil
		}
		return Defaults{}, err
	}

	if _, err := toml.DecodeFile(path, &d); err != nil {
		return Defaults{}, err
	}
	dbglog.Debugf("loaded defaults from %s: %+v", path, d)
	return d, nil
}

// Apply merges file defaults into opts wherever the CLI left the field at
// its zero value; a flag the user actually passed always wins.
func (d Defaults) Apply(opts Options, aslrFlagSet bool) Options {
	if !aslrFlagSet {
		opts.DisableASLR = d.DisableASLR
	}
	return opts
}
