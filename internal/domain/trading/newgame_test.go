package trading

import (
	"math/rand"
	"testing"

	"galaxytrader/internal/domain/economy"
)

func TestNewGameStateStartsDockedWithValidDigest(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewGameState(testClock(), rng)

	if got, want := s.Player.Credits, StartingCredits; got != want {
		t.Fatalf("starting credits mismatch: got=%d want=%d", got, want)
	}
	if got, want := s.Player.CurrentPlanetID, StartPlanetID; got != want {
		t.Fatalf("starting planet mismatch: got=%q want=%q", got, want)
	}
	if s.Player.IsTraveling || s.Player.TravelInfo != nil {
		t.Fatalf("fresh player must be docked")
	}
	if got, want := s.Player.Ship.Cargo.Capacity, StartingCargoCapacity; got != want {
		t.Fatalf("cargo capacity mismatch: got=%d want=%d", got, want)
	}
	if s.Player.Ship.Durability != StartingDurability || s.Player.Ship.MaxDurability != StartingDurability {
		t.Fatalf("durability mismatch: %+v", s.Player.Ship)
	}
	if s.Player.Ship.Upgrades.Cargo != 1 || s.Player.Ship.Upgrades.Durability != 1 {
		t.Fatalf("upgrade levels mismatch: %+v", s.Player.Ship.Upgrades)
	}
	if s.AutoBot != nil {
		t.Fatalf("fresh world must not carry a bot")
	}
	if !VerifyDigest(s) {
		t.Fatalf("fresh world digest must verify")
	}
}

func TestNewGameStateWorldShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewGameState(testClock(), rng)

	if got, want := len(s.Galaxy.Planets), 3; got != want {
		t.Fatalf("planet count mismatch: got=%d want=%d", got, want)
	}
	if got, want := len(s.Galaxy.Goods), 4; got != want {
		t.Fatalf("goods count mismatch: got=%d want=%d", got, want)
	}
	for _, planet := range s.Galaxy.Planets {
		if got, want := len(planet.Market), len(s.Galaxy.Goods); got != want {
			t.Fatalf("planet %s market size mismatch: got=%d want=%d", planet.ID, got, want)
		}
		if planet.Position.X < economy.MapPadding || planet.Position.X > economy.MapWidth-economy.MapPadding {
			t.Fatalf("planet %s x out of bounds: %v", planet.ID, planet.Position)
		}
		if planet.Position.Y < economy.MapPadding || planet.Position.Y > economy.MapHeight-economy.MapPadding {
			t.Fatalf("planet %s y out of bounds: %v", planet.ID, planet.Position)
		}
	}
	for i, a := range s.Galaxy.Planets {
		for _, b := range s.Galaxy.Planets[i+1:] {
			if economy.Distance2D(a.Position, b.Position) < economy.MinPlanetSeparation {
				t.Fatalf("planets %s and %s placed too close", a.ID, b.ID)
			}
		}
	}
}

func TestNewGameStateRollsDistinctLayouts(t *testing.T) {
	a := NewGameState(testClock(), rand.New(rand.NewSource(1)))
	b := NewGameState(testClock(), rand.New(rand.NewSource(2)))
	same := true
	for i := range a.Galaxy.Planets {
		if a.Galaxy.Planets[i].Position != b.Galaxy.Planets[i].Position {
			same = false
		}
	}
	if same {
		t.Fatalf("different seeds produced identical layouts")
	}
}
