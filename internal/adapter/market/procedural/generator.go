// Package procedural is the local market generator used when no remote
// service is configured. It follows the same pricing rules the remote service
// is asked to honor: one specialty good well below base price, everything else
// around base, sell prices at 85-95% of buy.
package procedural

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"galaxytrader/internal/domain/economy"
	"galaxytrader/internal/domain/trading"
)

type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) Generate(_ context.Context, draft trading.PlanetDraft, goods []economy.Good) ([]economy.MarketEntry, error) {
	if len(goods) == 0 {
		return nil, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	specialty := specialtyIndex(draft.Name, len(goods))
	entries := make([]economy.MarketEntry, 0, len(goods))
	for i, good := range goods {
		var buy int
		if i == specialty {
			// 50-70% of base: the planet produces this in abundance.
			buy = priceAt(good.BasePrice, 0.50+g.rng.Float64()*0.20)
		} else {
			buy = priceAt(good.BasePrice, 0.90+g.rng.Float64()*0.40)
		}
		sell := priceAt(buy, 0.85+g.rng.Float64()*0.10)
		if sell > buy {
			sell = buy
		}
		entries = append(entries, economy.MarketEntry{GoodID: good.ID, BuyPrice: buy, SellPrice: sell})
	}
	return entries, nil
}

// specialtyIndex derives a stable specialty pick from the planet name, so
// editing a planet's prices twice favors the same good.
func specialtyIndex(name string, n int) int {
	var h uint32
	for _, c := range []byte(name) {
		h = h*31 + uint32(c)
	}
	return int(h % uint32(n))
}

func priceAt(base int, factor float64) int {
	p := int(math.Round(float64(base) * factor))
	if p < 1 {
		p = 1
	}
	return p
}
