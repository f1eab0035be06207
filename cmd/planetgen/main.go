// Command planetgen generates a procedural planet from a seed: an
// equirectangular biome map, an optional compressed snapshot of the surface
// grid and an optional SQLite vegetation database.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"

	"planetgen/internal/config"
	"planetgen/internal/export"
	"planetgen/internal/noise"
	"planetgen/internal/octree"
	"planetgen/internal/planet"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults used when empty)")
		seed       = flag.Uint("seed", 0, "override the configured seed")
		mapPath    = flag.String("map", "planet.png", "output PNG map path (empty to skip)")
		mapWidth   = flag.Int("map-width", 1024, "map width in pixels (height is width/2)")
		snapPath   = flag.String("snapshot", "", "write a compressed surface snapshot to this path")
		dbPath     = flag.String("db", "", "write vegetation to a SQLite database at this path")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = uint32(*seed)
	}

	engine, err := noise.NewEngine(cfg.Seed, cfg.NoiseConfig())
	if err != nil {
		log.Fatalf("building noise engine: %v", err)
	}
	sampler := planet.NewSampler(engine, cfg.TerrainConfig(), cfg.WaterLevel, cfg.CoolingRate)
	log.Printf("planet seed=%d radius=%g water=%g", cfg.Seed, cfg.Radius, cfg.WaterLevel)

	if *mapPath != "" {
		if err := renderMap(sampler, *mapPath, *mapWidth); err != nil {
			log.Fatalf("rendering map: %v", err)
		}
		log.Printf("wrote map %s", *mapPath)
	}

	tree := octree.New(mgl64.Vec3{}, cfg.Radius*4.4)
	placer := planet.NewVegetationPlacer(sampler, cfg.Radius, cfg.Vegetation, cfg.Seed)
	trees, err := placer.Place(tree)
	if err != nil {
		log.Fatalf("placing vegetation: %v", err)
	}
	log.Printf("placed %d trees", len(trees))

	if *snapPath != "" {
		snap := buildSnapshot(sampler, cfg, trees)
		if err := export.WriteSnapshot(*snapPath, snap); err != nil {
			log.Fatalf("writing snapshot: %v", err)
		}
		log.Printf("wrote snapshot %s (%d samples)", *snapPath, len(snap.Samples))
	}

	if *dbPath != "" {
		store, err := export.OpenVegetationStore(*dbPath)
		if err != nil {
			log.Fatalf("opening vegetation db: %v", err)
		}
		if err := store.InsertBatch(trees); err != nil {
			_ = store.Close()
			log.Fatalf("writing vegetation db: %v", err)
		}
		if err := store.Close(); err != nil {
			log.Fatalf("closing vegetation db: %v", err)
		}
		log.Printf("wrote vegetation db %s", *dbPath)
	}
}

// renderMap samples the surface at 2x the target resolution and downscales
// with Catmull-Rom, which smooths the per-pixel dither into terrain texture.
func renderMap(s *planet.Sampler, path string, width int) error {
	height := width / 2
	superW, superH := width*2, height*2

	img := image.NewRGBA(image.Rect(0, 0, superW, superH))
	dirs := planet.DirectionGrid(superW, superH)

	lastPct := -1
	for y := 0; y < superH; y++ {
		for x := 0; x < superW; x++ {
			sm := s.Sample(dirs[y*superW+x])
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(sm.Color.R*255 + 0.5),
				G: uint8(sm.Color.G*255 + 0.5),
				B: uint8(sm.Color.B*255 + 0.5),
				A: 255,
			})
		}
		if pct := (y + 1) * 100 / superH; pct/10 > lastPct/10 {
			log.Printf("map render %d%%", pct)
			lastPct = pct
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}

func buildSnapshot(s *planet.Sampler, cfg config.Planet, trees []planet.VegetationInstance) export.SnapshotV1 {
	snap := export.NewSnapshot(cfg.Seed)
	snap.Radius = cfg.Radius
	snap.WaterLevel = cfg.WaterLevel
	snap.GridWidth = cfg.Resolution
	snap.GridHeight = cfg.Resolution / 2

	dirs := planet.DirectionGrid(snap.GridWidth, snap.GridHeight)
	snap.Samples = make([]export.SampleV1, 0, len(dirs))
	for _, dir := range dirs {
		sm := s.Sample(dir)
		snap.Samples = append(snap.Samples, export.SampleV1{
			Elevation:   sm.Elevation,
			Temperature: sm.Temperature,
			Moisture:    sm.Moisture,
			River:       sm.River,
			Biome:       int(sm.Biome),
		})
	}

	snap.Vegetation = make([]export.VegetationV1, 0, len(trees))
	for _, inst := range trees {
		snap.Vegetation = append(snap.Vegetation, export.VegetationV1{
			ID:     inst.ID,
			Biome:  int(inst.Biome),
			Height: inst.Height,
			Pos:    [3]float64{inst.Pos.X(), inst.Pos.Y(), inst.Pos.Z()},
		})
	}
	return snap
}
