package trading

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"galaxytrader/internal/domain/economy"
)

// InitiateTravel debits fuel and puts the player in transit. The trip resolves
// by wall-clock time: the end time is stamped here and CompleteTravel finalizes
// arrival once it has passed, whether or not anything polled in between.
func InitiateTravel(s GameState, destinationID string, now time.Time) Result {
	if s.Player.IsTraveling {
		return fail(CodeAlreadyTraveling, "You are already in transit.")
	}
	if s.Player.Ship.Durability <= 0 {
		return fail(CodeShipWrecked, "Your ship is wrecked and cannot fly.")
	}
	if s.Player.CurrentPlanetID == destinationID {
		return fail(CodeAlreadyDocked, "You are already on this planet.")
	}
	origin := s.CurrentPlanet()
	destination := s.Galaxy.PlanetByID(destinationID)
	if origin == nil || destination == nil {
		return fail(CodePlanetNotFound, "Invalid planet coordinates.")
	}

	distance := economy.Distance(origin.Position, destination.Position)
	fuelCost := int(math.Round(distance / FuelCostDivisor))
	if fuelCost > s.Player.Credits {
		return fail(CodeInsufficientFunds, fmt.Sprintf("Not enough credits for fuel. Cost: %d", fuelCost))
	}

	duration := time.Duration(distance / TravelSpeed * float64(time.Second))
	next := s.Clone()
	next.Player.Credits -= fuelCost
	next.Player.CurrentPlanetID = ""
	next.Player.IsTraveling = true
	next.Player.TravelInfo = &TravelInfo{
		OriginPlanetID:      origin.ID,
		DestinationPlanetID: destination.ID,
		StartTime:           now,
		EndTime:             now.Add(duration),
	}
	return ok(next, fmt.Sprintf("Departed for %s. Paid %d credits for fuel, arriving in %ds.",
		destination.Name, fuelCost, int(duration.Seconds())))
}

// CompleteTravel finalizes an arrival. It returns (nil, "") unless the player
// is in transit and the stored end time has passed, which makes it safe to
// poll on any period: before the deadline it is a no-op, at or after it the
// caller commits the returned snapshot and the next poll sees a docked player.
// Arrival deducts the destination's tax and may cost some durability.
func CompleteTravel(s GameState, now time.Time, rng *rand.Rand) (*GameState, string) {
	if !s.Player.IsTraveling || s.Player.TravelInfo == nil {
		return nil, ""
	}
	if now.Before(s.Player.TravelInfo.EndTime) {
		return nil, ""
	}

	destination := s.Galaxy.PlanetByID(s.Player.TravelInfo.DestinationPlanetID)
	next := s.Clone()
	next.Player.IsTraveling = false
	next.Player.TravelInfo = nil
	if destination == nil {
		// Destination deleted mid-flight cannot happen (delete guards), but a
		// corrupted save could get here: fall back to the origin.
		next.Player.CurrentPlanetID = s.Player.TravelInfo.OriginPlanetID
		return &next, "Arrival aborted: destination no longer exists."
	}
	next.Player.CurrentPlanetID = destination.ID

	tax := int(math.Round(float64(next.Player.Credits) * destination.TaxRate))
	next.Player.Credits -= tax

	damage := 0
	if rng.Float64() < TravelDamageChance {
		damage = MinTravelDamage + rng.Intn(MaxTravelDamage-MinTravelDamage+1)
	}
	next.Player.Ship.Durability -= damage
	if next.Player.Ship.Durability < 0 {
		next.Player.Ship.Durability = 0
	}

	message := fmt.Sprintf("Arrived at %s. Paid %d credits in taxes.", destination.Name, tax)
	if damage > 0 {
		message += fmt.Sprintf(" Ship durability decreased by %d.", damage)
	}
	return &next, message
}
