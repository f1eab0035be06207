// Package biome classifies planet surface samples into a closed set of
// surface types and shades them. Classification is a pure function of
// elevation, temperature and moisture.
package biome

// Biome is the closed set of surface classifications. The zero value is
// Ocean.
type Biome int

const (
	Ocean Biome = iota
	Beach
	Desert
	Savanna
	Rainforest
	Grassland
	Forest
	Swamp
	Mountains
	Snow
	Tundra

	biomeCount
)

var biomeNames = [...]string{
	Ocean:      "ocean",
	Beach:      "beach",
	Desert:     "desert",
	Savanna:    "savanna",
	Rainforest: "rainforest",
	Grassland:  "grassland",
	Forest:     "forest",
	Swamp:      "swamp",
	Mountains:  "mountains",
	Snow:       "snow",
	Tundra:     "tundra",
}

func (b Biome) String() string {
	if b < 0 || b >= biomeCount {
		return "unknown"
	}
	return biomeNames[b]
}

// Valid reports whether b is one of the defined biomes.
func (b Biome) Valid() bool {
	return b >= 0 && b < biomeCount
}

// Classification thresholds. The beach band is a thin shell just above the
// water level; the temperature cuts partition the adjusted temperature into
// hot/warm/cool/cold.
const (
	beachBand = 0.01
	hotTemp   = 0.7
	warmTemp  = 0.4
	coolTemp  = 0.2
	snowElev  = 0.8

	// DefaultCoolingRate controls how strongly altitude cools the climate.
	DefaultCoolingRate = 0.7
)

// Classify maps a sample to a biome using DefaultCoolingRate.
func Classify(elevation, temperature, moisture, waterLevel float64) Biome {
	return ClassifyWithCooling(elevation, temperature, moisture, waterLevel, DefaultCoolingRate)
}

// ClassifyWithCooling evaluates the decision tree in a fixed order: water,
// beach shell, then temperature bands (adjusted for altitude cooling) split
// by moisture. Every finite input maps to exactly one biome.
func ClassifyWithCooling(elevation, temperature, moisture, waterLevel, coolingRate float64) Biome {
	if elevation <= waterLevel {
		return Ocean
	}
	if elevation < waterLevel+beachBand {
		return Beach
	}

	cooling := (elevation - waterLevel) * coolingRate
	if cooling < 0 {
		cooling = 0
	}
	adjusted := temperature - cooling

	switch {
	case adjusted > hotTemp:
		switch {
		case moisture < 1.0/3.0:
			return Desert
		case moisture < 2.0/3.0:
			return Savanna
		default:
			return Rainforest
		}
	case adjusted > warmTemp:
		switch {
		case moisture < 0.3:
			return Grassland
		case moisture < 0.75:
			return Forest
		default:
			return Swamp
		}
	case adjusted > coolTemp:
		if moisture < 0.5 {
			return Grassland
		}
		return Forest
	default:
		if elevation > snowElev {
			return Snow
		}
		if moisture < 0.3 {
			return Tundra
		}
		return Mountains
	}
}
