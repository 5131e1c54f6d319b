package economy

import (
	"math"
	"math/rand"
)

const (
	// DriftMaxSwing is the half-width of the per-update buy price fluctuation.
	DriftMaxSwing = 0.05

	// Sell prices land between DriftSellFloor and 100% of the drifted buy
	// price. Rounding can make them equal; that looseness is kept on purpose.
	DriftSellFloor = 0.80
)

// DriftPrices perturbs every market entry of every planet in place. Callers
// hand it a cloned galaxy; the function never fails.
func DriftPrices(g *Galaxy, rng *rand.Rand) {
	for pi := range g.Planets {
		planet := &g.Planets[pi]
		for mi := range planet.Market {
			entry := &planet.Market[mi]
			if g.GoodByID(entry.GoodID) == nil {
				continue
			}
			fluctuation := (rng.Float64() - 0.5) * 2 * DriftMaxSwing
			buy := int(math.Round(float64(entry.BuyPrice) * (1 + fluctuation)))
			if buy < 1 {
				buy = 1
			}
			sellFactor := DriftSellFloor + rng.Float64()*(1-DriftSellFloor)
			sell := int(math.Round(float64(buy) * sellFactor))
			if sell < 1 {
				sell = 1
			}
			entry.BuyPrice = buy
			entry.SellPrice = sell
		}
	}
}
