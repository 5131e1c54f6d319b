package trading

import "fmt"

// Buy purchases quantity units of a good on the docked planet. The travel
// state machine guarantees callers are docked; an unknown planet id still
// resolves to a clean failure rather than a panic.
func Buy(s GameState, goodID string, quantity int) Result {
	if quantity <= 0 {
		return fail(CodeInvalidArgument, "Purchase quantity must be positive.")
	}
	planet := s.CurrentPlanet()
	if planet == nil {
		return fail(CodeNotDocked, "You must be docked at a planet to trade.")
	}
	entry := planet.MarketFor(goodID)
	if entry == nil {
		return fail(CodeGoodUnavailable, "Good not available here.")
	}

	totalCost := entry.BuyPrice * quantity
	if totalCost > s.Player.Credits {
		return fail(CodeInsufficientFunds, fmt.Sprintf("Not enough credits. Required: %d", totalCost))
	}
	if s.Player.Ship.Cargo.Load()+quantity > s.Player.Ship.Cargo.Capacity {
		return fail(CodeInsufficientCargo, "Not enough cargo space.")
	}

	next := s.Clone()
	next.Player.Credits -= totalCost
	next.Player.Ship.Cargo.add(goodID, quantity)
	return ok(next, fmt.Sprintf("Bought %d units for %d credits.", quantity, totalCost))
}

// Sell liquidates quantity units of a held good at the docked planet's sell
// price, pruning the cargo line if it reaches zero.
func Sell(s GameState, goodID string, quantity int) Result {
	if quantity <= 0 {
		return fail(CodeInvalidArgument, "Sale quantity must be positive.")
	}
	if s.Player.Ship.Cargo.QuantityOf(goodID) < quantity {
		return fail(CodeInsufficientGoods, "Not enough goods to sell.")
	}
	planet := s.CurrentPlanet()
	if planet == nil {
		return fail(CodeNotDocked, "You must be docked at a planet to trade.")
	}
	entry := planet.MarketFor(goodID)
	if entry == nil {
		return fail(CodeGoodUnavailable, "This planet doesn't buy this good.")
	}

	totalGain := entry.SellPrice * quantity
	next := s.Clone()
	next.Player.Credits += totalGain
	next.Player.Ship.Cargo.remove(goodID, quantity)
	return ok(next, fmt.Sprintf("Sold %d units for %d credits.", quantity, totalGain))
}
