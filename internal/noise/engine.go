// Package noise implements the seeded gradient-noise synthesis used for
// planet surfaces: simplex kernels in 2/3/4 dimensions, fractal and ridged
// composites, and the terrain/climate/river bands derived from them. All
// outputs are pure functions of the seed and the sample coordinates.
package noise

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Config controls a fractal band. It is immutable once an Engine is built.
type Config struct {
	Scale          float64
	Octaves        int
	Persistence    float64
	Lacunarity     float64
	Redistribution float64
}

// DefaultConfig is the baseline band used when nothing else is configured.
func DefaultConfig() Config {
	return Config{Scale: 1, Octaves: 6, Persistence: 0.5, Lacunarity: 2, Redistribution: 1}
}

func (c Config) Validate() error {
	if c.Octaves <= 0 {
		return fmt.Errorf("noise config: octaves must be positive, got %d", c.Octaves)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("noise config: scale must be positive, got %g", c.Scale)
	}
	if c.Persistence <= 0 {
		return fmt.Errorf("noise config: persistence must be positive, got %g", c.Persistence)
	}
	if c.Lacunarity <= 0 {
		return fmt.Errorf("noise config: lacunarity must be positive, got %g", c.Lacunarity)
	}
	if c.Redistribution <= 0 {
		return fmt.Errorf("noise config: redistribution must be positive, got %g", c.Redistribution)
	}
	return nil
}

// Band configures one constituent of the terrain composite.
type Band struct {
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Weight      float64
}

// TerrainConfig holds the three elevation bands. Continent carries the large
// landmass shapes, Mountain is a ridged band for sharp relief, Hill adds
// fine detail on top.
type TerrainConfig struct {
	Continent Band
	Mountain  Band
	Hill      Band
}

func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		Continent: Band{Scale: 1.0, Octaves: 4, Persistence: 0.5, Lacunarity: 2.0, Weight: 0.5},
		Mountain:  Band{Scale: 2.5, Octaves: 5, Persistence: 0.5, Lacunarity: 2.0, Weight: 0.35},
		Hill:      Band{Scale: 4.0, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0, Weight: 0.15},
	}
}

// ClimateSample holds the per-direction climate values, both in [0, 1].
type ClimateSample struct {
	Temperature float64
	Moisture    float64
}

// Fixed offsets and scales for the derived bands. Moisture and river noise
// sample far away from the temperature band so the three stay decorrelated.
const (
	climateScale   = 1.5
	climateOctaves = 4
	moistureOffset = 1000.0
	riverOffset    = 2000.0
	riverScale     = 3.0
	riverOctaves   = 2
	riverSharpness = 8.0
)

// Engine owns an immutable permutation table built once from the seed. All
// methods are read-only and safe to call concurrently.
type Engine struct {
	seed uint32
	cfg  Config
	perm PermTable
}

func NewEngine(seed uint32, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		seed: seed,
		cfg:  cfg,
		perm: NewPermTable(NewRand32(seed)),
	}, nil
}

func (e *Engine) Seed() uint32 { return e.seed }

// Fractal3 accumulates octaves of Noise3 starting at the given frequency,
// halving nothing implicitly: amplitude decays by persistence, frequency
// grows by lacunarity, and the sum is normalized by the total amplitude so
// results stay roughly in [-1, 1].
func (e *Engine) Fractal3(x, y, z, scale float64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := scale
	total := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		total += amplitude * e.Noise3(x*frequency, y*frequency, z*frequency)
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

// Ridged3 is 1-|Noise3|, producing sharp ridge lines where the raw noise
// crosses zero.
func (e *Engine) Ridged3(x, y, z float64) float64 {
	return 1.0 - math.Abs(e.Noise3(x, y, z))
}

// RidgedFractal3 is the ridged counterpart of Fractal3, normalized to [0, 1].
func (e *Engine) RidgedFractal3(x, y, z, scale float64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := scale
	total := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		total += amplitude * e.Ridged3(x*frequency, y*frequency, z*frequency)
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

// TerrainElevation samples the three terrain bands from the same direction
// and blends them by weight. The ridged mountain band is remapped from
// [0,1] to [-1,1] before weighting. The engine's redistribution exponent is
// applied sign-preservingly to the blend.
func (e *Engine) TerrainElevation(dir mgl64.Vec3, tc TerrainConfig) float64 {
	x, y, z := dir.X(), dir.Y(), dir.Z()
	continent := e.Fractal3(x, y, z, tc.Continent.Scale, tc.Continent.Octaves, tc.Continent.Persistence, tc.Continent.Lacunarity)
	mountain := e.RidgedFractal3(x, y, z, tc.Mountain.Scale, tc.Mountain.Octaves, tc.Mountain.Persistence, tc.Mountain.Lacunarity)
	hill := e.Fractal3(x, y, z, tc.Hill.Scale, tc.Hill.Octaves, tc.Hill.Persistence, tc.Hill.Lacunarity)
	elev := continent*tc.Continent.Weight + (mountain*2.0-1.0)*tc.Mountain.Weight + hill*tc.Hill.Weight
	return redistribute(elev, e.cfg.Redistribution)
}

// Climate derives temperature and moisture for a direction. Moisture samples
// the same band shifted by a large constant offset so the two fields are
// independent, then both are normalized to [0, 1].
func (e *Engine) Climate(dir mgl64.Vec3) ClimateSample {
	x, y, z := dir.X(), dir.Y(), dir.Z()
	temp := e.Fractal3(x, y, z, climateScale, climateOctaves, 0.5, 2.0)
	moist := e.Fractal3(x+moistureOffset, y+moistureOffset, z+moistureOffset, climateScale, climateOctaves, 0.5, 2.0)
	return ClimateSample{
		Temperature: Normalize01(temp, -1, 1),
		Moisture:    Normalize01(moist, -1, 1),
	}
}

// RiverFactor returns a [0,1] channel mask for a direction. A ridged band at
// a fixed offset is attenuated by elevation (rivers avoid peaks) and raised
// to a high power so only thin channels survive.
func (e *Engine) RiverFactor(dir mgl64.Vec3, elevationNorm float64) float64 {
	x, y, z := dir.X(), dir.Y(), dir.Z()
	n := e.Fractal3(x+riverOffset, y+riverOffset, z+riverOffset, riverScale, riverOctaves, 0.5, 2.0)
	ridge := 1.0 - math.Abs(n)
	v := ridge * (1.0 - elevationNorm)
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return math.Pow(v, riverSharpness)
}

// Normalize01 maps x from [lo, hi] to [0, 1], clamped. An empty source
// interval falls back to the neutral 0.5 instead of dividing by zero.
func Normalize01(x, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	v := (x - lo) / (hi - lo)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// redistribute applies |x|^p with the sign of x, so exponents behave on
// negative elevations.
func redistribute(x, p float64) float64 {
	if p == 1 {
		return x
	}
	return math.Copysign(math.Pow(math.Abs(x), p), x)
}
