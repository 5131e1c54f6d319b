package autobot

import (
	"context"
	"fmt"
	"time"

	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/domain/trading"
)

// UseCase drives the AutoBot's 4-state task cycle:
//
//	BUYING -> TRAVELING_TO_SELL -> SELLING -> TRAVELING_TO_BUY -> BUYING
//
// One side-effecting action per tick. Arrival is detected on one tick and the
// trade deferred to the next; a tick during transit is a pure no-op, so the
// bot can never stack a second travel order on an unresolved one.
type UseCase struct {
	State *gamestate.Container
	Now   func() time.Time
}

func (u UseCase) Start(ctx context.Context, cfg trading.AutoBotConfig) trading.Result {
	now := u.now()
	return u.State.Apply(ctx, func(s trading.GameState) trading.Result {
		return trading.StartAutoBot(s, cfg, now)
	})
}

func (u UseCase) Stop(ctx context.Context) trading.Result {
	now := u.now()
	return u.State.Apply(ctx, func(s trading.GameState) trading.Result {
		return trading.StopAutoBot(s, now)
	})
}

// Tick advances the mission by at most one action. It reports whether the
// committed state changed.
func (u UseCase) Tick(ctx context.Context) bool {
	now := u.now()
	return u.State.Advance(ctx, func(s trading.GameState) (*trading.GameState, string) {
		return step(s, now)
	})
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func step(s trading.GameState, now time.Time) (*trading.GameState, string) {
	if !s.AutoBotActive() {
		return nil, ""
	}

	// Deadline first: an expired mission deactivates regardless of task.
	if !now.Before(s.AutoBot.EndTime) {
		next := s.Clone()
		next.AutoBot = nil
		return &next, "AutoBot mission complete: deadline reached."
	}

	// Never act while the ship is in transit; the travel watcher resolves
	// arrival, the next tick reacts to it.
	if s.Player.IsTraveling {
		return nil, ""
	}

	bot := s.AutoBot
	switch bot.CurrentTask {
	case trading.TaskTravelingToSell:
		if s.Player.CurrentPlanetID == bot.DestinationPlanetID {
			next := s.Clone()
			next.AutoBot.CurrentTask = trading.TaskSelling
			next.AutoBot.AppendLog(now, "Arrived at destination; selling next cycle.")
			return &next, ""
		}
		// Docked somewhere unexpected (shouldn't happen): resume the leg.
		return depart(s, bot.DestinationPlanetID, trading.TaskTravelingToSell, now)

	case trading.TaskTravelingToBuy:
		if s.Player.CurrentPlanetID == bot.OriginPlanetID {
			next := s.Clone()
			next.AutoBot.CurrentTask = trading.TaskBuying
			next.AutoBot.AppendLog(now, "Back at origin; buying next cycle.")
			return &next, ""
		}
		return depart(s, bot.OriginPlanetID, trading.TaskTravelingToBuy, now)

	case trading.TaskBuying:
		next := s
		if qty := purchasableQuantity(s); qty > 0 {
			if r := trading.Buy(s, bot.GoodID, qty); r.OK() {
				next = *r.State
				next.AutoBot.AppendLog(now, fmt.Sprintf("Bought %d x %s.", qty, bot.GoodID))
			} else {
				next = s.Clone()
				next.AutoBot.AppendLog(now, "Purchase skipped: "+r.Message)
			}
		} else {
			next = s.Clone()
			next.AutoBot.AppendLog(now, "Nothing to buy this cycle.")
		}
		return depart(next, bot.DestinationPlanetID, trading.TaskTravelingToSell, now)

	case trading.TaskSelling:
		next := s
		if held := s.Player.Ship.Cargo.QuantityOf(bot.GoodID); held > 0 {
			if r := trading.Sell(s, bot.GoodID, held); r.OK() {
				next = *r.State
				next.AutoBot.AppendLog(now, fmt.Sprintf("Sold %d x %s.", held, bot.GoodID))
			} else {
				next = s.Clone()
				next.AutoBot.AppendLog(now, "Sale skipped: "+r.Message)
			}
		} else {
			next = s.Clone()
			next.AutoBot.AppendLog(now, "No cargo to sell this cycle.")
		}
		return depart(next, bot.OriginPlanetID, trading.TaskTravelingToBuy, now)
	}
	return nil, ""
}

// purchasableQuantity is min(configured target, free cargo space, what the
// credits can pay for at the local buy price).
func purchasableQuantity(s trading.GameState) int {
	bot := s.AutoBot
	planet := s.CurrentPlanet()
	if planet == nil {
		return 0
	}
	entry := planet.MarketFor(bot.GoodID)
	if entry == nil || entry.BuyPrice <= 0 {
		return 0
	}
	qty := bot.TradeQuantity
	if free := s.Player.Ship.Cargo.Capacity - s.Player.Ship.Cargo.Load(); free < qty {
		qty = free
	}
	if affordable := s.Player.Credits / entry.BuyPrice; affordable < qty {
		qty = affordable
	}
	if qty < 0 {
		return 0
	}
	return qty
}

// depart initiates the next travel leg. Travel failure is fatal for the
// mission, not for the game: the bot logs, deactivates and the world stays as
// the trades left it.
func depart(s trading.GameState, destinationID string, task trading.AutoBotTask, now time.Time) (*trading.GameState, string) {
	r := trading.InitiateTravel(s, destinationID, now)
	if !r.OK() {
		next := s.Clone()
		next.AutoBot = nil
		return &next, "AutoBot mission aborted: " + r.Message
	}
	next := *r.State
	next.AutoBot.CurrentTask = task
	next.AutoBot.AppendLog(now, r.Message)
	return &next, ""
}
