package trading

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"galaxytrader/internal/domain/economy"
)

// PlanetDraft carries the caller-supplied fields of a new or edited planet.
// Market prices never come from the caller; they are produced by the market
// generation service and passed to the mutator already validated.
type PlanetDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TaxRate     float64 `json:"taxRate"`
	Color       string  `json:"color"`
}

func (d PlanetDraft) validate() Result {
	if strings.TrimSpace(d.Name) == "" {
		return fail(CodeInvalidArgument, "Planet name is required.")
	}
	if d.TaxRate < 0 || d.TaxRate >= 1 {
		return fail(CodeInvalidArgument, "Tax rate must be in [0, 1).")
	}
	return Result{Code: CodeOK}
}

func planetID(g *economy.Galaxy, name string) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, name)
	if base == "" {
		base = "planet"
	}
	id := base
	for n := 2; g.PlanetByID(id) != nil; n++ {
		id = fmt.Sprintf("%s%d", base, n)
	}
	return id
}

// AddPlanet places a new planet with the generated market. The generation
// service has already succeeded by the time this runs, so the commit is
// all-or-nothing from the caller's side.
func AddPlanet(s GameState, draft PlanetDraft, market []economy.MarketEntry, now time.Time, rng *rand.Rand) Result {
	if r := draft.validate(); !r.OK() {
		return r
	}

	next := s.Clone()
	existing := make([]economy.Position, len(next.Galaxy.Planets))
	for i, p := range next.Galaxy.Planets {
		existing[i] = p.Position
	}
	planet := economy.Planet{
		ID:          planetID(&next.Galaxy, draft.Name),
		Name:        strings.TrimSpace(draft.Name),
		Position:    economy.PlacePosition(existing, rng),
		TaxRate:     draft.TaxRate,
		Description: draft.Description,
		Color:       draft.Color,
		Market:      append([]economy.MarketEntry(nil), market...),
	}
	next.Galaxy.Planets = append(next.Galaxy.Planets, planet)
	next.LastUpdated = now
	return ok(next, fmt.Sprintf("Planet %s added to the galaxy.", planet.Name))
}

// UpdatePlanet merges an edited draft and regenerated market into an existing
// planet. Position and id are stable across edits.
func UpdatePlanet(s GameState, id string, draft PlanetDraft, market []economy.MarketEntry, now time.Time) Result {
	if r := draft.validate(); !r.OK() {
		return r
	}
	if s.Galaxy.PlanetByID(id) == nil {
		return fail(CodePlanetNotFound, "No such planet.")
	}

	next := s.Clone()
	planet := next.Galaxy.PlanetByID(id)
	planet.Name = strings.TrimSpace(draft.Name)
	planet.Description = draft.Description
	planet.TaxRate = draft.TaxRate
	planet.Color = draft.Color
	planet.Market = append([]economy.MarketEntry(nil), market...)
	next.LastUpdated = now
	return ok(next, fmt.Sprintf("Planet %s updated.", planet.Name))
}

// DeletePlanet removes a planet and its market unless it is the last planet,
// the player's current location, or part of an active AutoBot mission.
func DeletePlanet(s GameState, id string, now time.Time) Result {
	planet := s.Galaxy.PlanetByID(id)
	if planet == nil {
		return fail(CodePlanetNotFound, "No such planet.")
	}
	if len(s.Galaxy.Planets) <= 1 {
		return fail(CodeLastPlanet, "Cannot delete the last planet in the galaxy.")
	}
	if s.Player.CurrentPlanetID == id {
		return fail(CodePlanetOccupied, "Cannot delete the planet you are docked at.")
	}
	if s.Player.TravelInfo != nil &&
		(s.Player.TravelInfo.OriginPlanetID == id || s.Player.TravelInfo.DestinationPlanetID == id) {
		return fail(CodePlanetOccupied, "Cannot delete a planet on your flight path.")
	}
	if s.AutoBotActive() &&
		(s.AutoBot.OriginPlanetID == id || s.AutoBot.DestinationPlanetID == id) {
		return fail(CodePlanetOnMission, "Cannot delete a planet used by the active AutoBot mission.")
	}

	next := s.Clone()
	planets := next.Galaxy.Planets[:0]
	name := planet.Name
	for _, p := range next.Galaxy.Planets {
		if p.ID != id {
			planets = append(planets, p)
		}
	}
	next.Galaxy.Planets = planets
	next.LastUpdated = now
	return ok(next, fmt.Sprintf("Planet %s removed from the galaxy.", name))
}

// UpdateMarketPrices is the drift mutator: it perturbs every market entry and
// stamps the snapshot. It always succeeds.
func UpdateMarketPrices(s GameState, now time.Time, rng *rand.Rand) GameState {
	next := s.Clone()
	economy.DriftPrices(&next.Galaxy, rng)
	next.LastUpdated = now
	return next
}
