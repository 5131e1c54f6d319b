package trading

import (
	"fmt"
	"math"
)

// Repair restores up to amount durability points at the per-point rate,
// clamped to the ship's maximum. A ship already at full durability reports
// AlreadyFull whatever the amount, including zero.
func Repair(s GameState, amount int) Result {
	if amount < 0 {
		return fail(CodeInvalidArgument, "Repair amount cannot be negative.")
	}
	if s.Player.Ship.Durability >= s.Player.Ship.MaxDurability {
		return fail(CodeAlreadyFull, "Ship is already at full durability.")
	}
	totalCost := amount * RepairCostPerPoint
	if totalCost > s.Player.Credits {
		return fail(CodeInsufficientFunds, fmt.Sprintf("Not enough credits for repair. Cost: %d", totalCost))
	}

	next := s.Clone()
	next.Player.Credits -= totalCost
	next.Player.Ship.Durability += amount
	if next.Player.Ship.Durability > next.Player.Ship.MaxDurability {
		next.Player.Ship.Durability = next.Player.Ship.MaxDurability
	}
	return ok(next, fmt.Sprintf("Repaired ship for %d credits.", totalCost))
}

// DurabilityReport is the explicit status query the zero-amount repair call
// used to stand in for.
func DurabilityReport(s GameState) string {
	ship := s.Player.Ship
	if ship.Durability >= ship.MaxDurability {
		return fmt.Sprintf("Hull at full durability (%d/%d).", ship.Durability, ship.MaxDurability)
	}
	missing := ship.MaxDurability - ship.Durability
	return fmt.Sprintf("Hull at %d/%d. Full repair costs %d credits.", ship.Durability, ship.MaxDurability, missing*RepairCostPerPoint)
}

// UpgradeCost is the price of the next level on a track, or 0 at max level.
func UpgradeCost(spec UpgradeSpec, level int) int {
	if level >= spec.MaxLevel {
		return 0
	}
	return int(math.Floor(float64(spec.BaseCost) * math.Pow(spec.CostMultiplier, float64(level-1))))
}

// Upgrade advances one ship track. The durability track also heals the ship by
// the per-level amount, so upgrading repairs damage as a side effect.
func Upgrade(s GameState, track UpgradeTrack) Result {
	spec, known := UpgradeSpecs[track]
	if !known {
		return fail(CodeInvalidArgument, fmt.Sprintf("Unknown upgrade track %q.", track))
	}

	level := s.Player.Ship.Upgrades.Cargo
	if track == UpgradeDurability {
		level = s.Player.Ship.Upgrades.Durability
	}
	if level >= spec.MaxLevel {
		return fail(CodeMaxLevelReached, "This system is already at maximum level.")
	}
	cost := UpgradeCost(spec, level)
	if cost > s.Player.Credits {
		return fail(CodeInsufficientFunds, fmt.Sprintf("Not enough credits for upgrade. Cost: %d", cost))
	}

	next := s.Clone()
	next.Player.Credits -= cost
	switch track {
	case UpgradeCargo:
		next.Player.Ship.Upgrades.Cargo++
		next.Player.Ship.Cargo.Capacity += spec.PerLevel
	case UpgradeDurability:
		next.Player.Ship.Upgrades.Durability++
		next.Player.Ship.MaxDurability += spec.PerLevel
		next.Player.Ship.Durability += spec.PerLevel
		if next.Player.Ship.Durability > next.Player.Ship.MaxDurability {
			next.Player.Ship.Durability = next.Player.Ship.MaxDurability
		}
	}
	return ok(next, fmt.Sprintf("Upgraded %s to level %d for %d credits.", track, level+1, cost))
}
