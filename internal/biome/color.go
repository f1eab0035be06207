package biome

import (
	"github.com/go-gl/mathgl/mgl64"

	"planetgen/internal/noise"
)

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Lerp blends a toward b by t.
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func rgbHex(v uint32) RGB {
	return RGB{
		R: float64(v>>16&0xFF) / 255.0,
		G: float64(v>>8&0xFF) / 255.0,
		B: float64(v&0xFF) / 255.0,
	}
}

// Per-biome base color and the accent it drifts toward under high
// moisture/elevation.
var palette = [biomeCount]struct{ base, accent RGB }{
	Ocean:      {rgbHex(0x1A4F8A), rgbHex(0x123A66)},
	Beach:      {rgbHex(0xD9C79B), rgbHex(0xCBB27E)},
	Desert:     {rgbHex(0xD8C06C), rgbHex(0xC4A855)},
	Savanna:    {rgbHex(0xB6A95C), rgbHex(0x9A9150)},
	Rainforest: {rgbHex(0x1D7A3A), rgbHex(0x145C2C)},
	Grassland:  {rgbHex(0x6FAE4E), rgbHex(0x58963F)},
	Forest:     {rgbHex(0x2F7D3C), rgbHex(0x226330)},
	Swamp:      {rgbHex(0x4C6B3C), rgbHex(0x3A5530)},
	Mountains:  {rgbHex(0x8A8A85), rgbHex(0x6F6F6A)},
	Snow:       {rgbHex(0xF2F4F5), rgbHex(0xDCE3E8)},
	Tundra:     {rgbHex(0x9AA289), rgbHex(0x7E8671)},
}

// BaseColor returns the palette base for b.
func BaseColor(b Biome) RGB {
	if !b.Valid() {
		return RGB{}
	}
	return palette[b].base
}

// Dither parameters: a high-frequency band far from every terrain/climate
// offset, with amplitude small enough to read as texture, not banding.
const (
	ditherScale     = 64.0
	ditherOffset    = 3000.0
	ditherAmplitude = 0.02
)

// Colorer shades classified samples. The dither uses its own fixed noise
// band so two adjacent samples of the same biome still separate visually
// while staying reproducible for a given engine seed.
type Colorer struct {
	engine *noise.Engine
}

func NewColorer(e *noise.Engine) *Colorer {
	return &Colorer{engine: e}
}

// Shade returns the biome's base color drifted toward its accent by
// moisture and elevation, plus a low-amplitude spatial dither.
func (c *Colorer) Shade(dir mgl64.Vec3, b Biome, elevation, temperature, moisture float64) RGB {
	if !b.Valid() {
		return RGB{}
	}
	drift := clamp01(moisture*0.6 + elevation*0.4)
	col := Lerp(palette[b].base, palette[b].accent, drift*0.35)

	d := c.engine.Noise3(
		dir.X()*ditherScale+ditherOffset,
		dir.Y()*ditherScale+ditherOffset,
		dir.Z()*ditherScale+ditherOffset,
	) * ditherAmplitude

	return RGB{
		R: clamp01(col.R + d),
		G: clamp01(col.G + d),
		B: clamp01(col.B + d),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
