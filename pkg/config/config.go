// Package config loads the optional tool configuration from
// /etc/tunectl/config.toml, falling back to built-in defaults for
// anything unset. The configuration covers operational knobs only;
// profile content is compiled in.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/paths"
	"github.com/perfkit/tunectl/pkg/types"
)

// Config is the tool configuration.
type Config struct {
	// SearchRoots are the directories scanned for snapshots during
	// rollback.
	SearchRoots []string `toml:"search_roots"`

	// ReportDir is where session reports are exported as YAML.
	ReportDir string `toml:"report_dir"`

	// Confirm controls whether apply asks for confirmation before
	// mutating. Disabled for unattended runs.
	Confirm bool `toml:"confirm"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SearchRoots: paths.DefaultSearchRoots(),
		ReportDir:   paths.ReportDir(),
		Confirm:     true,
	}
}

// Load reads the configuration file at path, merging it over the
// defaults. A missing file is not an error: defaults apply.
func Load(filesystem types.FS, path string) (*Config, error) {
	cfg := Default()

	data, err := filesystem.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "reading %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "parsing %s", path)
	}
	if len(cfg.SearchRoots) == 0 {
		cfg.SearchRoots = paths.DefaultSearchRoots()
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = paths.ReportDir()
	}
	return cfg, nil
}
