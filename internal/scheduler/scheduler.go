package scheduler

import (
	"context"
	"log"
	"math/rand"
	"time"

	"galaxytrader/internal/app/autobot"
	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/trading"
)

type Config struct {
	MarketDrift    time.Duration
	TravelPoll     time.Duration
	AutoBotTick    time.Duration
	AutosaveNotice time.Duration
}

func DefaultConfig() Config {
	return Config{
		MarketDrift:    10 * time.Second,
		TravelPoll:     time.Second,
		AutoBotTick:    5 * time.Second,
		AutosaveNotice: 30 * time.Second,
	}
}

// Scheduler runs the periodic timers against the committed snapshot. All four
// fire into one select loop, so callbacks execute to completion before the
// next one runs; the container's commit lock covers platforms with real
// parallelism. Cancelling the context is the only way to stop the timers.
type Scheduler struct {
	State    *gamestate.Container
	Bot      autobot.UseCase
	Notifier ports.Notifier
	Rng      *rand.Rand
	Cfg      Config
	Now      func() time.Time
}

func (s Scheduler) Run(ctx context.Context) {
	drift := time.NewTicker(s.Cfg.MarketDrift)
	travel := time.NewTicker(s.Cfg.TravelPoll)
	bot := time.NewTicker(s.Cfg.AutoBotTick)
	autosave := time.NewTicker(s.Cfg.AutosaveNotice)
	defer drift.Stop()
	defer travel.Stop()
	defer bot.Stop()
	defer autosave.Stop()

	log.Printf("scheduler: drift=%s travel-poll=%s autobot=%s", s.Cfg.MarketDrift, s.Cfg.TravelPoll, s.Cfg.AutoBotTick)
	for {
		select {
		case <-ctx.Done():
			return
		case <-drift.C:
			now := s.now()
			s.State.Advance(ctx, func(st trading.GameState) (*trading.GameState, string) {
				next := trading.UpdateMarketPrices(st, now, s.Rng)
				return &next, ""
			})
		case <-travel.C:
			now := s.now()
			s.State.Advance(ctx, func(st trading.GameState) (*trading.GameState, string) {
				return trading.CompleteTravel(st, now, s.Rng)
			})
		case <-bot.C:
			s.Bot.Tick(ctx)
		case <-autosave.C:
			if s.Notifier != nil {
				s.Notifier.Notify("Progress autosaved.", ports.SeverityInfo)
			}
		}
	}
}

func (s Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
