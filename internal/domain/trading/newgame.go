package trading

import (
	"math/rand"
	"time"

	"galaxytrader/internal/domain/economy"
)

// DefaultGalaxy is the seed world. Positions are placeholders; NewGameState
// rolls fresh coordinates for every planet.
func DefaultGalaxy() economy.Galaxy {
	return economy.Galaxy{
		Name: "MakeMoney",
		Goods: []economy.Good{
			{ID: "water", Name: "Aqua Pura", BasePrice: 20},
			{ID: "food", Name: "Nutri-Paste", BasePrice: 50},
			{ID: "minerals", Name: "Xenon Crystals", BasePrice: 150},
			{ID: "tech", Name: "Quantum Chips", BasePrice: 500},
		},
		Planets: []economy.Planet{
			{
				ID:          "terra",
				Name:        "Terra Prime",
				TaxRate:     0.05,
				Color:       "#4c9aff",
				Description: "The bustling capital of the 'MakeMoney' galaxy, with a balanced economy and stable markets.",
				Market: []economy.MarketEntry{
					{GoodID: "water", BuyPrice: 22, SellPrice: 18},
					{GoodID: "food", BuyPrice: 55, SellPrice: 45},
					{GoodID: "minerals", BuyPrice: 160, SellPrice: 140},
					{GoodID: "tech", BuyPrice: 480, SellPrice: 450},
				},
			},
			{
				ID:          "aqua",
				Name:        "Aqua Ventus",
				TaxRate:     0.02,
				Color:       "#36b37e",
				Description: "An ocean world, rich in water resources but desperate for advanced technology and minerals.",
				Market: []economy.MarketEntry{
					{GoodID: "water", BuyPrice: 15, SellPrice: 10},
					{GoodID: "food", BuyPrice: 60, SellPrice: 50},
					{GoodID: "minerals", BuyPrice: 180, SellPrice: 160},
					{GoodID: "tech", BuyPrice: 550, SellPrice: 520},
				},
			},
			{
				ID:          "volcanis",
				Name:        "Volcanis",
				TaxRate:     0.10,
				Color:       "#ff5630",
				Description: "A mineral-rich volcanic planet. The harsh environment makes food and water scarce and valuable.",
				Market: []economy.MarketEntry{
					{GoodID: "water", BuyPrice: 35, SellPrice: 30},
					{GoodID: "food", BuyPrice: 70, SellPrice: 60},
					{GoodID: "minerals", BuyPrice: 120, SellPrice: 100},
					{GoodID: "tech", BuyPrice: 520, SellPrice: 490},
				},
			},
		},
	}
}

// NewGameState builds a fresh world: seed galaxy, re-rolled planet positions,
// the starting ship docked at the start planet, and a valid digest.
func NewGameState(now time.Time, rng *rand.Rand) GameState {
	galaxy := DefaultGalaxy()
	economy.AssignPositions(galaxy.Planets, rng)

	state := GameState{
		Player: PlayerState{
			Credits:         StartingCredits,
			CurrentPlanetID: StartPlanetID,
			Ship: Ship{
				Name:          "Stardust Cruiser",
				Durability:    StartingDurability,
				MaxDurability: StartingDurability,
				Cargo:         CargoHold{Capacity: StartingCargoCapacity},
				Upgrades:      ShipUpgrades{Cargo: 1, Durability: 1},
			},
		},
		Galaxy:      galaxy,
		LastUpdated: now,
	}
	state.Checksum = Digest(state)
	return state
}
