package trading

const (
	StartingCredits = 1000
	StartPlanetID   = "terra"

	StartingCargoCapacity = 20
	StartingDurability    = 100

	// RepairCostPerPoint is the shipyard rate in credits per durability point.
	RepairCostPerPoint = 10

	// FuelCostDivisor converts 3-D distance to a fuel price.
	FuelCostDivisor = 10

	// TravelSpeed is ship velocity in map units per second. Travel resolves in
	// real elapsed time, so this directly sets trip length.
	TravelSpeed = 50.0

	// Arrival has a DamageChance probability of costing between MinTravelDamage
	// and MaxTravelDamage durability points.
	TravelDamageChance = 0.20
	MinTravelDamage    = 1
	MaxTravelDamage    = 5
)

type UpgradeTrack string

const (
	UpgradeCargo      UpgradeTrack = "cargo"
	UpgradeDurability UpgradeTrack = "durability"
)

type UpgradeSpec struct {
	BaseCost       int
	CostMultiplier float64
	PerLevel       int
	MaxLevel       int
}

var UpgradeSpecs = map[UpgradeTrack]UpgradeSpec{
	UpgradeCargo:      {BaseCost: 500, CostMultiplier: 1.8, PerLevel: 10, MaxLevel: 5},
	UpgradeDurability: {BaseCost: 800, CostMultiplier: 1.8, PerLevel: 25, MaxLevel: 5},
}
