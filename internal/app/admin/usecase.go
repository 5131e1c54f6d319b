package admin

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/economy"
	"galaxytrader/internal/domain/trading"
)

// UseCase covers planet CRUD. Add and update first call the market generation
// service; only a validated price table ever reaches a mutator, so a service
// failure leaves the committed state byte-for-byte unchanged.
type UseCase struct {
	State   *gamestate.Container
	Markets ports.MarketGenerator
	Now     func() time.Time
	Rng     *rand.Rand
}

func (u UseCase) AddPlanet(ctx context.Context, draft trading.PlanetDraft) trading.Result {
	market, err := u.generate(ctx, draft)
	if err != nil {
		return u.serviceFailure(err)
	}
	now := u.now()
	return u.State.Apply(ctx, func(s trading.GameState) trading.Result {
		return trading.AddPlanet(s, draft, market, now, u.Rng)
	})
}

func (u UseCase) UpdatePlanet(ctx context.Context, id string, draft trading.PlanetDraft) trading.Result {
	market, err := u.generate(ctx, draft)
	if err != nil {
		return u.serviceFailure(err)
	}
	now := u.now()
	return u.State.Apply(ctx, func(s trading.GameState) trading.Result {
		return trading.UpdatePlanet(s, id, draft, market, now)
	})
}

func (u UseCase) DeletePlanet(ctx context.Context, id string) trading.Result {
	now := u.now()
	return u.State.Apply(ctx, func(s trading.GameState) trading.Result {
		return trading.DeletePlanet(s, id, now)
	})
}

func (u UseCase) generate(ctx context.Context, draft trading.PlanetDraft) ([]economy.MarketEntry, error) {
	goods := u.State.Snapshot().Galaxy.Goods
	entries, err := u.Markets.Generate(ctx, draft, goods)
	if err != nil {
		return nil, err
	}
	if err := ports.ValidateMarket(entries, goods); err != nil {
		return nil, err
	}
	return entries, nil
}

func (u UseCase) serviceFailure(err error) trading.Result {
	message := "Failed to generate the planetary market. Please try again."
	if errors.Is(err, ports.ErrMarketGenMalformed) {
		message = "The market service returned an unusable price table."
	}
	result := trading.Result{Code: trading.CodeMarketGenFailed, Message: message}
	if u.State.Notifier != nil {
		u.State.Notifier.Notify(message, ports.SeverityError)
	}
	return result
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
