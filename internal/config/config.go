// YAML config loader with CUE validation integration
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"swapnet-ops/internal/recommend"
	"swapnet-ops/internal/station"
)

//go:embed default.yaml
var defaultYAML []byte

// Defaults applied when the config file leaves a field empty.
const (
	DefaultNetworkID      = "swapnet"
	DefaultListen         = ":8080"
	DefaultSimDelay       = 2 * time.Second
	DefaultStatusInterval = 10 * time.Second
	DefaultDatabase       = "public"
)

// Greptime configures the optional GreptimeDB sink.
type Greptime struct {
	Endpoint     string `yaml:"endpoint"`
	Database     string `yaml:"database"`
	StatusTable  string `yaml:"status_table"`
	JournalTable string `yaml:"journal_table"`
}

// Config is the root configuration of a swapnet process.
type Config struct {
	NetworkID      string               `yaml:"network_id"`
	Listen         string               `yaml:"listen"`
	SimDelay       time.Duration        `yaml:"sim_delay"`
	StatusInterval time.Duration        `yaml:"status_interval"`
	ScenarioFile   string               `yaml:"scenario_file"`
	Greptime       Greptime             `yaml:"greptime"`
	Locations      []recommend.Location `yaml:"locations"`
	Seed           station.Seed         `yaml:"seed"`
}

// Load reads the config at path, or the embedded default when path is
// empty, validates it against the CUE schema and applies defaults.
func Load(path string) (*Config, error) {
	data := defaultYAML
	name := "default.yaml"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		data, name = b, path
	}
	return Parse(name, data)
}

// Parse validates and decodes a YAML document.
func Parse(name string, data []byte) (*Config, error) {
	if err := Validate(name, data); err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.NetworkID == "" {
		c.NetworkID = DefaultNetworkID
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.SimDelay <= 0 {
		c.SimDelay = DefaultSimDelay
	}
	if c.StatusInterval <= 0 {
		c.StatusInterval = DefaultStatusInterval
	}
	if c.Greptime.Database == "" {
		c.Greptime.Database = DefaultDatabase
	}
	if len(c.Locations) == 0 {
		c.Locations = recommend.DefaultLocations()
	}
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("NETWORK_ID"); v != "" {
		c.NetworkID = v
	}
	if v := getenv("LISTEN_ADDR"); v != "" {
		c.Listen = v
	}
	if v := getenv("SIM_DELAY"); v != "" {
		d, err := positiveDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SIM_DELAY: %w", err)
		}
		c.SimDelay = d
	}
	if v := getenv("STATUS_INTERVAL"); v != "" {
		d, err := positiveDuration(v)
		if err != nil {
			return fmt.Errorf("invalid STATUS_INTERVAL: %w", err)
		}
		c.StatusInterval = d
	}
	if v := getenv("GREPTIMEDB_ENDPOINT"); v != "" {
		c.Greptime.Endpoint = v
	}
	if v := getenv("GREPTIMEDB_DATABASE"); v != "" {
		c.Greptime.Database = v
	}
	if v := getenv("STATUS_TABLE"); v != "" {
		c.Greptime.StatusTable = v
	}
	if v := getenv("JOURNAL_TABLE"); v != "" {
		c.Greptime.JournalTable = v
	}
	return nil
}

func positiveDuration(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %s must be positive", d)
	}
	return d, nil
}

// DefaultSeed returns the seed shipped with the binary.
func DefaultSeed() (station.Seed, error) {
	cfg, err := Parse("default.yaml", defaultYAML)
	if err != nil {
		return station.Seed{}, err
	}
	return cfg.Seed, nil
}
