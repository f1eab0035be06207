package planet

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"planetgen/internal/biome"
	"planetgen/internal/noise"
	"planetgen/internal/octree"
)

// VegetationInstance is one placed tree on the planet surface.
type VegetationInstance struct {
	ID     int
	Biome  biome.Biome
	Height float64
	Pos    mgl64.Vec3
}

// VegetationConfig controls placement density and tree dimensions.
type VegetationConfig struct {
	Density       float64 `yaml:"density"`
	MinSpacing    float64 `yaml:"min_spacing"`
	MinTreeHeight float64 `yaml:"min_tree_height"`
	MaxTreeHeight float64 `yaml:"max_tree_height"`
	GridWidth     int     `yaml:"grid_width"`
	GridHeight    int     `yaml:"grid_height"`
}

// Relative tree density per biome, scaled by the configured global density.
var treeDensity = [...]float64{
	biome.Ocean:      0,
	biome.Beach:      0.02,
	biome.Desert:     0.01,
	biome.Savanna:    0.15,
	biome.Rainforest: 0.9,
	biome.Grassland:  0.1,
	biome.Forest:     0.7,
	biome.Swamp:      0.5,
	biome.Mountains:  0.05,
	biome.Snow:       0,
	biome.Tundra:     0.02,
}

// VegetationPlacer scatters trees over the surface. Placement is fully
// determined by the sampler's seed and the placement seed.
type VegetationPlacer struct {
	sampler *Sampler
	radius  float64
	cfg     VegetationConfig
	rng     *noise.Rand32
}

func NewVegetationPlacer(s *Sampler, radius float64, cfg VegetationConfig, seed uint32) *VegetationPlacer {
	return &VegetationPlacer{
		sampler: s,
		radius:  radius,
		cfg:     cfg,
		rng:     noise.NewRand32(seed),
	}
}

// Place walks an equirectangular grid of candidate cells, rolls against the
// biome density at each, and inserts accepted trees into tree. The random
// stream draws the same number of values per cell regardless of outcome so
// the layout of one region never depends on another.
func (v *VegetationPlacer) Place(tree *octree.Tree) ([]VegetationInstance, error) {
	dirs := DirectionGrid(v.cfg.GridWidth, v.cfg.GridHeight)
	out := make([]VegetationInstance, 0, len(dirs)/16)

	for _, dir := range dirs {
		roll := v.rng.Next()
		heightRoll := v.rng.Next()

		sample := v.sampler.Sample(dir)
		density := treeDensity[sample.Biome] * v.cfg.Density
		if density <= 0 || roll >= density {
			continue
		}

		pos := dir.Mul(v.radius * (1 + sample.Elevation))
		if _, found := tree.FindNearest(pos, v.cfg.MinSpacing); found {
			continue
		}

		inst := VegetationInstance{
			ID:     len(out),
			Biome:  sample.Biome,
			Height: v.cfg.MinTreeHeight + heightRoll*(v.cfg.MaxTreeHeight-v.cfg.MinTreeHeight),
			Pos:    pos,
		}
		if err := tree.Insert(octree.Point{Pos: pos, Data: inst}); err != nil {
			return nil, fmt.Errorf("placing tree %d: %w", inst.ID, err)
		}
		out = append(out, inst)
	}
	return out, nil
}
