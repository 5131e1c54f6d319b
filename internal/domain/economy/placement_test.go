package economy

import (
	"math/rand"
	"testing"
)

func TestPlacePositionRespectsBoundsAndSeparation(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	existing := []Position{{X: 400, Y: 300, Z: 0}}

	for i := 0; i < 100; i++ {
		pos := PlacePosition(existing, rng)
		if pos.X < MapPadding || pos.X > MapWidth-MapPadding {
			t.Fatalf("x out of bounds: %v", pos)
		}
		if pos.Y < MapPadding || pos.Y > MapHeight-MapPadding {
			t.Fatalf("y out of bounds: %v", pos)
		}
		if pos.Z < -MaxDepth || pos.Z > MaxDepth {
			t.Fatalf("z out of bounds: %v", pos)
		}
		if Distance2D(pos, existing[0]) < MinPlanetSeparation {
			t.Fatalf("placed %v within separation of %v on a near-empty map", pos, existing[0])
		}
	}
}

func TestPlacePositionFallsBackOnCrowdedMap(t *testing.T) {
	// Saturate the map so no sample can clear the separation requirement; the
	// attempt cap must then hand back the last sample instead of spinning.
	var crowd []Position
	for x := 0.0; x <= MapWidth; x += 40 {
		for y := 0.0; y <= MapHeight; y += 40 {
			crowd = append(crowd, Position{X: x, Y: y})
		}
	}
	rng := rand.New(rand.NewSource(23))
	pos := PlacePosition(crowd, rng)
	if pos.X < MapPadding || pos.X > MapWidth-MapPadding ||
		pos.Y < MapPadding || pos.Y > MapHeight-MapPadding {
		t.Fatalf("fallback position out of bounds: %v", pos)
	}
}

func TestAssignPositionsSeparatesAllPlanets(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	planets := []Planet{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	AssignPositions(planets, rng)
	for i, a := range planets {
		for _, b := range planets[i+1:] {
			if Distance2D(a.Position, b.Position) < MinPlanetSeparation {
				t.Fatalf("planets %s and %s too close: %v vs %v", a.ID, b.ID, a.Position, b.Position)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	a := Position{X: 0, Y: 0, Z: 0}
	b := Position{X: 3, Y: 4, Z: 12}
	if got, want := Distance(a, b), 13.0; got != want {
		t.Fatalf("3-D distance mismatch: got=%v want=%v", got, want)
	}
	if got, want := Distance2D(a, b), 5.0; got != want {
		t.Fatalf("2-D distance mismatch: got=%v want=%v", got, want)
	}
}
