// Package config loads CLI defaults from wetwire-l1.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "wetwire-l1.yaml"

// EnvPrefix prefixes every environment override, e.g. WETWIRE_L1_REGION.
const EnvPrefix = "WETWIRE_L1_"

// Config holds CLI defaults. Command-line flags take precedence over these.
type Config struct {
	// Format is the output format of rendered documents: text or json.
	Format string `yaml:"format"`
	// Region and Profile select AWS credentials for asset publishing.
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
	// AssetBucket and AssetPrefix locate published layer assets.
	AssetBucket string `yaml:"assetBucket"`
	AssetPrefix string `yaml:"assetPrefix"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Format:      "text",
		AssetPrefix: "assets/",
	}
}

// Load reads path (or DefaultFile when path is empty) over the defaults and
// applies environment overrides. A missing DefaultFile is not an error; a
// missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		cfg.Source = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from WETWIRE_L1_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for name, field := range map[string]*string{
		"FORMAT":       &c.Format,
		"REGION":       &c.Region,
		"PROFILE":      &c.Profile,
		"ASSET_BUCKET": &c.AssetBucket,
		"ASSET_PREFIX": &c.AssetPrefix,
	} {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*field = v
		}
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be text or json", c.Format)
	}
}
