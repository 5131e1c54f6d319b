package economy

import "math/rand"

const (
	MapWidth  = 800
	MapHeight = 600

	// MapPadding keeps planets off the map edges.
	MapPadding = 50

	// MinPlanetSeparation is the required 2-D distance between planets.
	MinPlanetSeparation = 150

	// PlacementAttempts caps rejection sampling. Past the cap the last sample
	// is accepted even if too close; a crowded map beats an infinite loop.
	PlacementAttempts = 100

	MaxDepth = 50 // z is drawn from [-MaxDepth, MaxDepth]
)

func randomPosition(rng *rand.Rand) Position {
	return Position{
		X: float64(rng.Intn(MapWidth-MapPadding*2) + MapPadding),
		Y: float64(rng.Intn(MapHeight-MapPadding*2) + MapPadding),
		Z: float64(rng.Intn(MaxDepth*2+1) - MaxDepth),
	}
}

// PlacePosition draws positions until one clears every existing planet, or the
// attempt cap runs out, in which case the final sample is used as-is.
func PlacePosition(existing []Position, rng *rand.Rand) Position {
	var pos Position
	for attempt := 0; attempt < PlacementAttempts; attempt++ {
		pos = randomPosition(rng)
		ok := true
		for _, other := range existing {
			if Distance2D(pos, other) < MinPlanetSeparation {
				ok = false
				break
			}
		}
		if ok {
			return pos
		}
	}
	return pos
}

// AssignPositions rolls fresh coordinates for every planet of a new galaxy.
func AssignPositions(planets []Planet, rng *rand.Rand) {
	placed := make([]Position, 0, len(planets))
	for i := range planets {
		pos := PlacePosition(placed, rng)
		planets[i].Position = pos
		placed = append(placed, pos)
	}
}
