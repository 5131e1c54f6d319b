package autobot

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/domain/economy"
	"galaxytrader/internal/domain/trading"
)

// The fixture planets sit 500 units apart: fuel 50 credits, 10 seconds in
// transit. Water buys for 20 at terra and sells for 22 at aqua.
func botState() trading.GameState {
	s := trading.GameState{
		Player: trading.PlayerState{
			Credits:         1000,
			CurrentPlanetID: "terra",
			Ship: trading.Ship{
				Durability:    100,
				MaxDurability: 100,
				Cargo:         trading.CargoHold{Capacity: 20},
			},
		},
		Galaxy: economy.Galaxy{
			Goods: []economy.Good{{ID: "water", Name: "Aqua Pura", BasePrice: 20}},
			Planets: []economy.Planet{
				{
					ID:       "terra",
					Name:     "Terra Prime",
					Position: economy.Position{X: 100, Y: 100},
					Market:   []economy.MarketEntry{{GoodID: "water", BuyPrice: 20, SellPrice: 18}},
				},
				{
					ID:       "aqua",
					Name:     "Aqua Ventus",
					Position: economy.Position{X: 400, Y: 500},
					Market:   []economy.MarketEntry{{GoodID: "water", BuyPrice: 25, SellPrice: 22}},
				},
			},
		},
	}
	s.Checksum = trading.Digest(s)
	return s
}

// botHarness drives the bot and the travel watcher against one container with
// a hand-cranked clock.
type botHarness struct {
	container *gamestate.Container
	bot       UseCase
	now       time.Time
	rng       *rand.Rand
}

func newBotHarness(t *testing.T) *botHarness {
	t.Helper()
	h := &botHarness{
		container: gamestate.NewContainer(botState(), nil, nil, nil),
		now:       time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		rng:       rand.New(rand.NewSource(4)),
	}
	h.bot = UseCase{State: h.container, Now: func() time.Time { return h.now }}
	return h
}

func (h *botHarness) advanceClock(d time.Duration) {
	h.now = h.now.Add(d)
}

// resolveTravel plays the travel watcher's poll.
func (h *botHarness) resolveTravel() {
	h.container.Advance(context.Background(), func(s trading.GameState) (*trading.GameState, string) {
		return trading.CompleteTravel(s, h.now, h.rng)
	})
}

func TestTickIsNoOpWithoutMission(t *testing.T) {
	h := newBotHarness(t)
	if h.bot.Tick(context.Background()) {
		t.Fatalf("tick without a mission must not change state")
	}
}

func TestMissionFullCycle(t *testing.T) {
	h := newBotHarness(t)
	ctx := context.Background()

	r := h.bot.Start(ctx, trading.AutoBotConfig{
		GoodID:              "water",
		TradeQuantity:       5,
		DestinationPlanetID: "aqua",
		Duration:            time.Hour,
	})
	if !r.OK() {
		t.Fatalf("expected mission start, got code=%s message=%q", r.Code, r.Message)
	}

	// Tick 1: buy at origin and depart in one action window.
	h.advanceClock(5 * time.Second)
	if !h.bot.Tick(ctx) {
		t.Fatalf("expected buy-and-depart tick to commit")
	}
	s := h.container.Snapshot()
	if got, want := s.AutoBot.CurrentTask, trading.TaskTravelingToSell; got != want {
		t.Fatalf("task mismatch after buy: got=%s want=%s", got, want)
	}
	if got, want := s.Player.Ship.Cargo.QuantityOf("water"), 5; got != want {
		t.Fatalf("cargo mismatch after buy: got=%d want=%d", got, want)
	}
	// 1000 - 100 for goods - 50 fuel.
	if got, want := s.Player.Credits, 850; got != want {
		t.Fatalf("credits mismatch after buy leg: got=%d want=%d", got, want)
	}
	if !s.Player.IsTraveling {
		t.Fatalf("expected ship in transit")
	}

	// Tick 2, mid-transit: pure no-op.
	h.advanceClock(2 * time.Second)
	if h.bot.Tick(ctx) {
		t.Fatalf("mid-transit tick must be a no-op")
	}

	// Travel watcher resolves the arrival, then the bot reacts next tick.
	h.advanceClock(10 * time.Second)
	h.resolveTravel()
	s = h.container.Snapshot()
	if s.Player.CurrentPlanetID != "aqua" {
		t.Fatalf("expected docked at aqua, got %q", s.Player.CurrentPlanetID)
	}
	if got, want := s.AutoBot.CurrentTask, trading.TaskTravelingToSell; got != want {
		t.Fatalf("arrival must not advance the task: got=%s want=%s", got, want)
	}

	// Tick 3: arrival acknowledged, selling deferred to the next cycle.
	if !h.bot.Tick(ctx) {
		t.Fatalf("expected arrival tick to commit")
	}
	s = h.container.Snapshot()
	if got, want := s.AutoBot.CurrentTask, trading.TaskSelling; got != want {
		t.Fatalf("task mismatch after arrival: got=%s want=%s", got, want)
	}
	if got, want := s.Player.Ship.Cargo.QuantityOf("water"), 5; got != want {
		t.Fatalf("cargo must be untouched on the arrival tick: got=%d want=%d", got, want)
	}

	// Tick 4: sell everything and head home.
	h.advanceClock(5 * time.Second)
	if !h.bot.Tick(ctx) {
		t.Fatalf("expected sell-and-depart tick to commit")
	}
	s = h.container.Snapshot()
	if got := s.Player.Ship.Cargo.QuantityOf("water"); got != 0 {
		t.Fatalf("expected cargo liquidated, got %d", got)
	}
	if got, want := s.AutoBot.CurrentTask, trading.TaskTravelingToBuy; got != want {
		t.Fatalf("task mismatch after sale: got=%s want=%s", got, want)
	}

	// Home leg resolves, the bot settles back into BUYING.
	h.advanceClock(12 * time.Second)
	h.resolveTravel()
	if !h.bot.Tick(ctx) {
		t.Fatalf("expected homecoming tick to commit")
	}
	s = h.container.Snapshot()
	if got, want := s.AutoBot.CurrentTask, trading.TaskBuying; got != want {
		t.Fatalf("task mismatch after homecoming: got=%s want=%s", got, want)
	}
	if len(s.AutoBot.Logs) < 5 {
		t.Fatalf("expected a running mission log, got %v", s.AutoBot.Logs)
	}
}

func TestMissionEndsAtDeadline(t *testing.T) {
	h := newBotHarness(t)
	ctx := context.Background()

	r := h.bot.Start(ctx, trading.AutoBotConfig{
		GoodID:              "water",
		TradeQuantity:       5,
		DestinationPlanetID: "aqua",
		Duration:            time.Minute,
	})
	if !r.OK() {
		t.Fatalf("expected mission start, got code=%s", r.Code)
	}

	h.advanceClock(time.Minute)
	if !h.bot.Tick(ctx) {
		t.Fatalf("expected deadline tick to commit")
	}
	s := h.container.Snapshot()
	if s.AutoBot != nil {
		t.Fatalf("expected bot cleared at deadline, got %+v", s.AutoBot)
	}
}

func TestMissionAbortsWhenTravelFails(t *testing.T) {
	h := newBotHarness(t)
	ctx := context.Background()

	r := h.bot.Start(ctx, trading.AutoBotConfig{
		GoodID:              "water",
		TradeQuantity:       5,
		DestinationPlanetID: "aqua",
		Duration:            time.Hour,
	})
	if !r.OK() {
		t.Fatalf("expected mission start, got code=%s", r.Code)
	}

	// Drain the wallet below the 50-credit fuel price. The buy action cannot
	// trigger either, so the departure is what fails.
	h.container.Advance(ctx, func(s trading.GameState) (*trading.GameState, string) {
		next := s.Clone()
		next.Player.Credits = 10
		return &next, ""
	})

	h.advanceClock(5 * time.Second)
	if !h.bot.Tick(ctx) {
		t.Fatalf("expected abort tick to commit")
	}
	s := h.container.Snapshot()
	if s.AutoBot != nil {
		t.Fatalf("expected bot deactivated after failed departure")
	}
	if s.Player.IsTraveling {
		t.Fatalf("failed departure must leave the player docked")
	}
	if got, want := s.Player.CurrentPlanetID, "terra"; got != want {
		t.Fatalf("player moved on failed departure: got=%q want=%q", got, want)
	}
}

func TestUseCaseDefaultsToWallClock(t *testing.T) {
	uc := UseCase{State: gamestate.NewContainer(botState(), nil, nil, nil)}
	if uc.Tick(context.Background()) {
		t.Fatalf("tick without a mission must not commit")
	}
	if r := uc.Stop(context.Background()); r.Code != trading.CodeAutoBotInactive {
		t.Fatalf("expected inactive-bot rejection, got code=%s", r.Code)
	}
}

func TestStopWithoutMission(t *testing.T) {
	h := newBotHarness(t)
	r := h.bot.Stop(context.Background())
	if r.OK() || r.Code != trading.CodeAutoBotInactive {
		t.Fatalf("expected inactive-bot rejection, got code=%s", r.Code)
	}
	if !strings.Contains(r.Message, "No AutoBot mission") {
		t.Fatalf("message mismatch: %q", r.Message)
	}
}
