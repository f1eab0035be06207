// Package config loads and validates planet generation settings. Settings
// ship with working defaults; a YAML file overrides only the keys it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"planetgen/internal/noise"
	"planetgen/internal/planet"
)

// NoiseBand mirrors noise.Config with YAML tags.
type NoiseBand struct {
	Scale          float64 `yaml:"scale"`
	Octaves        int     `yaml:"octaves"`
	Persistence    float64 `yaml:"persistence"`
	Lacunarity     float64 `yaml:"lacunarity"`
	Redistribution float64 `yaml:"redistribution"`
}

// Band is one component of the terrain composite.
type Band struct {
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Weight      float64 `yaml:"weight"`
}

// TerrainBands holds the three elevation bands.
type TerrainBands struct {
	Continent Band `yaml:"continent"`
	Mountain  Band `yaml:"mountain"`
	Hill      Band `yaml:"hill"`
}

// Planet is the full generation configuration.
type Planet struct {
	Seed        uint32                  `yaml:"seed"`
	Radius      float64                 `yaml:"radius"`
	Resolution  int                     `yaml:"resolution"`
	WaterLevel  float64                 `yaml:"water_level"`
	CoolingRate float64                 `yaml:"cooling_rate"`
	Noise       NoiseBand               `yaml:"noise"`
	Terrain     TerrainBands            `yaml:"terrain"`
	Vegetation  planet.VegetationConfig `yaml:"vegetation"`
}

// Default returns a configuration that generates a reasonable planet without
// any file present.
func Default() Planet {
	nc := noise.DefaultConfig()
	tc := noise.DefaultTerrainConfig()
	return Planet{
		Seed:        12345,
		Radius:      1000,
		Resolution:  512,
		WaterLevel:  0.4,
		CoolingRate: 0.7,
		Noise: NoiseBand{
			Scale:          nc.Scale,
			Octaves:        nc.Octaves,
			Persistence:    nc.Persistence,
			Lacunarity:     nc.Lacunarity,
			Redistribution: nc.Redistribution,
		},
		Terrain: TerrainBands{
			Continent: fromBand(tc.Continent),
			Mountain:  fromBand(tc.Mountain),
			Hill:      fromBand(tc.Hill),
		},
		Vegetation: planet.VegetationConfig{
			Density:       1.0,
			MinSpacing:    8,
			MinTreeHeight: 4,
			MaxTreeHeight: 14,
			GridWidth:     512,
			GridHeight:    256,
		},
	}
}

func fromBand(b noise.Band) Band {
	return Band{
		Scale:       b.Scale,
		Octaves:     b.Octaves,
		Persistence: b.Persistence,
		Lacunarity:  b.Lacunarity,
		Weight:      b.Weight,
	}
}

func (b Band) toBand() noise.Band {
	return noise.Band{
		Scale:       b.Scale,
		Octaves:     b.Octaves,
		Persistence: b.Persistence,
		Lacunarity:  b.Lacunarity,
		Weight:      b.Weight,
	}
}

// Load reads a YAML file over the defaults. A missing file is an error; use
// Default directly when no file is configured.
func Load(path string) (Planet, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Planet{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Planet{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Planet{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the generator cannot run with.
func (p Planet) Validate() error {
	if p.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", p.Radius)
	}
	if p.Resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", p.Resolution)
	}
	if p.WaterLevel < 0 || p.WaterLevel > 1 {
		return fmt.Errorf("water_level must be in [0, 1], got %g", p.WaterLevel)
	}
	if p.CoolingRate < 0 {
		return fmt.Errorf("cooling_rate must be non-negative, got %g", p.CoolingRate)
	}
	if err := p.NoiseConfig().Validate(); err != nil {
		return fmt.Errorf("noise: %w", err)
	}
	for _, band := range []struct {
		name string
		b    Band
	}{
		{"continent", p.Terrain.Continent},
		{"mountain", p.Terrain.Mountain},
		{"hill", p.Terrain.Hill},
	} {
		if band.b.Octaves <= 0 {
			return fmt.Errorf("terrain %s: octaves must be positive, got %d", band.name, band.b.Octaves)
		}
		if band.b.Scale <= 0 {
			return fmt.Errorf("terrain %s: scale must be positive, got %g", band.name, band.b.Scale)
		}
		if band.b.Persistence <= 0 || band.b.Lacunarity <= 0 {
			return fmt.Errorf("terrain %s: persistence and lacunarity must be positive", band.name)
		}
	}
	v := p.Vegetation
	if v.Density < 0 {
		return fmt.Errorf("vegetation: density must be non-negative, got %g", v.Density)
	}
	if v.MinSpacing < 0 {
		return fmt.Errorf("vegetation: min_spacing must be non-negative, got %g", v.MinSpacing)
	}
	if v.MaxTreeHeight < v.MinTreeHeight {
		return fmt.Errorf("vegetation: max_tree_height %g below min_tree_height %g", v.MaxTreeHeight, v.MinTreeHeight)
	}
	if v.GridWidth <= 0 || v.GridHeight <= 0 {
		return fmt.Errorf("vegetation: grid dimensions must be positive, got %dx%d", v.GridWidth, v.GridHeight)
	}
	return nil
}

// NoiseConfig converts the noise section to the engine's config type.
func (p Planet) NoiseConfig() noise.Config {
	return noise.Config{
		Scale:          p.Noise.Scale,
		Octaves:        p.Noise.Octaves,
		Persistence:    p.Noise.Persistence,
		Lacunarity:     p.Noise.Lacunarity,
		Redistribution: p.Noise.Redistribution,
	}
}

// TerrainConfig converts the terrain section to the engine's band set.
func (p Planet) TerrainConfig() noise.TerrainConfig {
	return noise.TerrainConfig{
		Continent: p.Terrain.Continent.toBand(),
		Mountain:  p.Terrain.Mountain.toBand(),
		Hill:      p.Terrain.Hill.toBand(),
	}
}
