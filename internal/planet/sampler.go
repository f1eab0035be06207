// Package planet composes the noise bands and the biome classifier into a
// full surface model: sample any direction on the unit sphere and get back
// elevation, climate, river carving, biome and color.
package planet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"planetgen/internal/biome"
	"planetgen/internal/noise"
)

// SurfaceSample is the fully evaluated surface at one direction.
type SurfaceSample struct {
	Direction   mgl64.Vec3
	Elevation   float64 // normalized to [0, 1]
	Temperature float64
	Moisture    float64
	River       float64
	Biome       biome.Biome
	Color       biome.RGB
}

// Sampler evaluates the surface model. It is safe for concurrent use; all
// state is read-only after construction.
type Sampler struct {
	engine      *noise.Engine
	terrain     noise.TerrainConfig
	colorer     *biome.Colorer
	waterLevel  float64
	coolingRate float64
}

func NewSampler(e *noise.Engine, tc noise.TerrainConfig, waterLevel, coolingRate float64) *Sampler {
	return &Sampler{
		engine:      e,
		terrain:     tc,
		colorer:     biome.NewColorer(e),
		waterLevel:  waterLevel,
		coolingRate: coolingRate,
	}
}

// WaterLevel returns the normalized sea level the sampler classifies against.
func (s *Sampler) WaterLevel() float64 {
	return s.waterLevel
}

// Sample evaluates the surface at dir, which must be a unit vector.
func (s *Sampler) Sample(dir mgl64.Vec3) SurfaceSample {
	elev := s.engine.TerrainElevation(dir, s.terrain)
	elevNorm := noise.Normalize01(elev, -1, 1)

	climate := s.engine.Climate(dir)
	river := s.engine.RiverFactor(dir, elevNorm)

	b := biome.ClassifyWithCooling(elevNorm, climate.Temperature, climate.Moisture, s.waterLevel, s.coolingRate)
	col := s.colorer.Shade(dir, b, elevNorm, climate.Temperature, climate.Moisture)
	if b != biome.Ocean && river > 0 {
		col = biome.Lerp(col, biome.BaseColor(biome.Ocean), river*0.8)
	}

	return SurfaceSample{
		Direction:   dir,
		Elevation:   elevNorm,
		Temperature: climate.Temperature,
		Moisture:    climate.Moisture,
		River:       river,
		Biome:       b,
		Color:       col,
	}
}

// DirectionFromLatLon maps latitude and longitude in radians to a unit
// vector, with +Y at the north pole.
func DirectionFromLatLon(lat, lon float64) mgl64.Vec3 {
	cosLat := math.Cos(lat)
	return mgl64.Vec3{
		cosLat * math.Cos(lon),
		math.Sin(lat),
		cosLat * math.Sin(lon),
	}
}

// DirectionGrid returns an equirectangular w by h grid of unit directions,
// row-major, row 0 at the north pole.
func DirectionGrid(w, h int) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, w*h)
	for y := 0; y < h; y++ {
		lat := math.Pi/2 - math.Pi*(float64(y)+0.5)/float64(h)
		for x := 0; x < w; x++ {
			lon := -math.Pi + 2*math.Pi*(float64(x)+0.5)/float64(w)
			out = append(out, DirectionFromLatLon(lat, lon))
		}
	}
	return out
}
