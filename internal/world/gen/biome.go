package gen

import "image/color"

// Biome is an elevation/moisture classification bucket.
type Biome uint8

// Biomes in classification order. Gap marks an input outside the byte domain
// and never results from a well-formed sample.
const (
	Gap Biome = iota
	Ocean
	Beach
	BareRock
	Tundra
	Desert
	Grassland
	Forest
	Rainforest

	NumBiomes = int(Rainforest) + 1
)

// Classification thresholds on the [0, 255] sample scale.
const (
	oceanBelow     = 47
	beachBelow     = 57
	bareRockAbove  = 180
	tundraAbove    = 190
	desertBelow    = 100
	grasslandBelow = 130
	forestBelow    = 160
)

var biomeNames = [NumBiomes]string{
	Gap:        "gap",
	Ocean:      "ocean",
	Beach:      "beach",
	BareRock:   "bare_rock",
	Tundra:     "tundra",
	Desert:     "desert",
	Grassland:  "grassland",
	Forest:     "forest",
	Rainforest: "rainforest",
}

var biomeColors = [NumBiomes]color.RGBA{
	Gap:        {255, 182, 193, 255},
	Ocean:      {0, 119, 190, 255},
	Beach:      {194, 178, 128, 255},
	BareRock:   {128, 132, 135, 255},
	Tundra:     {219, 255, 255, 255},
	Desert:     {194, 178, 128, 255},
	Grassland:  {77, 189, 51, 255},
	Forest:     {34, 139, 34, 255},
	Rainforest: {69, 139, 0, 255},
}

func (b Biome) String() string {
	if int(b) >= NumBiomes {
		return biomeNames[Gap]
	}
	return biomeNames[b]
}

// Color returns the display color of b.
func (b Biome) Color() color.RGBA {
	if int(b) >= NumBiomes {
		return biomeColors[Gap]
	}
	return biomeColors[b]
}

// Classify maps an elevation and moisture pair to a biome.
//
//	Elevation     | Biome
//	<47           | Ocean
//	47-56         | Beach
//	>190          | Tundra
//	181-190       | Bare rock
//	57-180        | by moisture: <100 Desert, <130 Grassland, <160 Forest, else Rainforest
//
// Values outside [0, 255] on either axis classify as Gap.
func Classify(elevation, moisture int) Biome {
	if elevation < 0 || elevation > 255 || moisture < 0 || moisture > 255 {
		return Gap
	}

	switch {
	case elevation < oceanBelow:
		return Ocean
	case elevation < beachBelow:
		return Beach
	case elevation > tundraAbove:
		return Tundra
	case elevation > bareRockAbove:
		return BareRock
	}

	switch {
	case moisture < desertBelow:
		return Desert
	case moisture < grasslandBelow:
		return Grassland
	case moisture < forestBelow:
		return Forest
	default:
		return Rainforest
	}
}
