// Package config loads the tunable constants of the simulation from YAML,
// falling back to the embedded defaults that match spec.md §6 bit-exactly.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// TerrainConfig holds the parameters recognised by terrain generation.
type TerrainConfig struct {
	WaterNoiseThreshold float64 `yaml:"water_noise_threshold"`
	ResourceAmount      int     `yaml:"resource_amount"`
	NoiseScale          float64 `yaml:"noise_scale"`
	NoiseThreshold      float64 `yaml:"noise_threshold"`
}

// Config holds every tunable constant of the simulation.
type Config struct {
	TileSize             int           `yaml:"tile_size"`
	ChunkSize            int           `yaml:"chunk_size"`
	BeltSpeed            float64       `yaml:"belt_speed"`
	InserterTime         int           `yaml:"inserter_time"`
	FluidPerProgress      float64       `yaml:"fluid_per_progress"`
	CombustionEpsilon    float64       `yaml:"combustion_epsilon"`
	DropItemSize         float64       `yaml:"drop_item_size"`
	UndergroundBeltReach int           `yaml:"underground_belt_reach"`
	UndergroundPipeReach int           `yaml:"underground_pipe_reach"`
	CoalPower            float64       `yaml:"coal_power"`
	FluidRelaxation      float64       `yaml:"fluid_relaxation"`
	Terrain              TerrainConfig `yaml:"terrain"`
}

// Default returns the configuration embedded at build time.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		// The embedded defaults are a build-time invariant: if they fail
		// to parse, the binary itself is broken.
		panic(fmt.Sprintf("config: embedded defaults.yaml is invalid: %v", err))
	}
	return cfg
}

// Load parses a YAML document into a Config, starting from the embedded
// defaults so a partial document still yields a complete configuration.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}
