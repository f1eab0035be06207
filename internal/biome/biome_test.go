package biome

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"planetgen/internal/noise"
)

// TestClassifyOceanRule verifies any elevation at or below the water level
// is Ocean, including the reference scenario from the product notes.
func TestClassifyOceanRule(t *testing.T) {
	if got := Classify(0.2, 0.3, 0.2, 0.4); got != Ocean {
		t.Errorf("Classify(0.2, 0.3, 0.2, 0.4) = %v, want ocean", got)
	}

	for elev := 0.0; elev <= 0.4; elev += 0.05 {
		for temp := 0.0; temp <= 1.0; temp += 0.25 {
			for moist := 0.0; moist <= 1.0; moist += 0.25 {
				if got := Classify(elev, temp, moist, 0.4); got != Ocean {
					t.Fatalf("Classify(%g,%g,%g,0.4) = %v, want ocean", elev, temp, moist, got)
				}
			}
		}
	}
}

// TestClassifyBeachBand verifies the thin shell above the water level.
func TestClassifyBeachBand(t *testing.T) {
	if got := Classify(0.405, 0.5, 0.5, 0.4); got != Beach {
		t.Errorf("Classify just above water = %v, want beach", got)
	}
	if got := Classify(0.42, 0.5, 0.5, 0.4); got == Beach {
		t.Errorf("Classify above band = beach, want land biome")
	}
}

// TestClassifyBands spot-checks each branch of the decision tree.
func TestClassifyBands(t *testing.T) {
	// Elevation 0.45 over water level 0.4 cools by 0.035.
	cases := []struct {
		name                   string
		elevation, temp, moist float64
		want                   Biome
	}{
		{"hot dry", 0.45, 0.9, 0.1, Desert},
		{"hot mid", 0.45, 0.9, 0.5, Savanna},
		{"hot wet", 0.45, 0.9, 0.9, Rainforest},
		{"warm dry", 0.45, 0.6, 0.1, Grassland},
		{"warm mid", 0.45, 0.6, 0.5, Forest},
		{"warm wet", 0.45, 0.6, 0.9, Swamp},
		{"cool dry", 0.45, 0.3, 0.2, Grassland},
		{"cool wet", 0.45, 0.3, 0.8, Forest},
		{"cold peak", 0.95, 0.1, 0.5, Snow},
		{"cold dry", 0.45, 0.1, 0.1, Tundra},
		{"cold wet", 0.45, 0.1, 0.8, Mountains},
	}
	for _, c := range cases {
		if got := Classify(c.elevation, c.temp, c.moist, 0.4); got != c.want {
			t.Errorf("%s: Classify(%g,%g,%g,0.4) = %v, want %v", c.name, c.elevation, c.temp, c.moist, got, c.want)
		}
	}
}

// TestClassifyTotality sweeps a dense input grid and verifies every triple
// maps to exactly one valid biome.
func TestClassifyTotality(t *testing.T) {
	const steps = 50
	for ei := 0; ei <= steps; ei++ {
		for ti := 0; ti <= steps; ti++ {
			for mi := 0; mi <= steps; mi++ {
				elev := float64(ei) / steps
				temp := float64(ti) / steps
				moist := float64(mi) / steps
				b := Classify(elev, temp, moist, 0.4)
				if !b.Valid() {
					t.Fatalf("Classify(%g,%g,%g,0.4) = %d, not a valid biome", elev, temp, moist, b)
				}
			}
		}
	}
}

// TestClassifyCoolingRate verifies altitude pushes a warm climate into the
// colder branches as the cooling rate grows.
func TestClassifyCoolingRate(t *testing.T) {
	// temp 0.75 at elevation 0.6: no cooling keeps it hot, strong cooling
	// drops it to the cold branch.
	if got := ClassifyWithCooling(0.6, 0.75, 0.1, 0.4, 0); got != Desert {
		t.Errorf("no cooling: got %v, want desert", got)
	}
	if got := ClassifyWithCooling(0.6, 0.75, 0.1, 0.4, 3.0); got != Tundra {
		t.Errorf("strong cooling: got %v, want tundra", got)
	}
}

func testColorer(t *testing.T) *Colorer {
	t.Helper()
	e, err := noise.NewEngine(12345, noise.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewColorer(e)
}

// TestShadeDeterministic verifies identical inputs shade identically and the
// dither separates nearby samples of the same biome.
func TestShadeDeterministic(t *testing.T) {
	c := testColorer(t)
	dir := mgl64.Vec3{0.3, -0.5, 0.8}.Normalize()

	a := c.Shade(dir, Forest, 0.5, 0.5, 0.5)
	b := c.Shade(dir, Forest, 0.5, 0.5, 0.5)
	if a != b {
		t.Errorf("Shade not deterministic: %+v vs %+v", a, b)
	}

	near := mgl64.Vec3{0.31, -0.5, 0.8}.Normalize()
	if a == c.Shade(near, Forest, 0.5, 0.5, 0.5) {
		t.Error("dither did not separate adjacent samples of the same biome")
	}
}

// TestShadeRange verifies all channels stay in [0, 1] across biomes and
// extreme inputs.
func TestShadeRange(t *testing.T) {
	c := testColorer(t)
	dir := mgl64.Vec3{0, 1, 0}

	for b := Ocean; b < biomeCount; b++ {
		for _, v := range []float64{0, 0.5, 1} {
			col := c.Shade(dir, b, v, v, v)
			for _, ch := range []float64{col.R, col.G, col.B} {
				if ch < 0 || ch > 1 {
					t.Fatalf("Shade(%v, %g) channel %g out of [0,1]", b, v, ch)
				}
			}
		}
	}
}

// TestBiomeString verifies the closed set has stable names.
func TestBiomeString(t *testing.T) {
	if Ocean.String() != "ocean" || Tundra.String() != "tundra" {
		t.Errorf("unexpected names: %q, %q", Ocean.String(), Tundra.String())
	}
	if Biome(99).String() != "unknown" {
		t.Errorf("out-of-range biome String = %q, want unknown", Biome(99).String())
	}
}
