package ports

import (
	"context"

	"galaxytrader/internal/domain/economy"
	"galaxytrader/internal/domain/trading"
)

// MarketGenerator produces the full price table for a planet being created or
// edited: exactly one entry per catalog good, positive integer prices with
// sellPrice <= buyPrice. Implementations classify failures as
// ErrMarketGenUnavailable or ErrMarketGenMalformed so callers can surface a
// single clean error instead of a partial planet.
type MarketGenerator interface {
	Generate(ctx context.Context, draft trading.PlanetDraft, goods []economy.Good) ([]economy.MarketEntry, error)
}

// ValidateMarket enforces the generator contract on a produced table.
func ValidateMarket(entries []economy.MarketEntry, goods []economy.Good) error {
	if len(entries) != len(goods) {
		return ErrMarketGenMalformed
	}
	byGood := make(map[string]economy.MarketEntry, len(entries))
	for _, e := range entries {
		byGood[e.GoodID] = e
	}
	for _, g := range goods {
		e, present := byGood[g.ID]
		if !present {
			return ErrMarketGenMalformed
		}
		if e.BuyPrice <= 0 || e.SellPrice <= 0 || e.SellPrice > e.BuyPrice {
			return ErrMarketGenMalformed
		}
	}
	return nil
}
