package trading

import (
	"fmt"
	"time"
)

// AutoBotConfig is the mission the player hands to the bot: trade one good
// between the docked planet and a destination until the deadline.
type AutoBotConfig struct {
	GoodID              string        `json:"goodId"`
	TradeQuantity       int           `json:"tradeQuantity"`
	DestinationPlanetID string        `json:"destinationPlanetId"`
	Duration            time.Duration `json:"-"`
}

// StartAutoBot validates the mission and attaches an active bot in the BUYING
// state. The first side-effecting action happens on the next tick.
func StartAutoBot(s GameState, cfg AutoBotConfig, now time.Time) Result {
	if s.AutoBotActive() {
		return fail(CodeAutoBotActive, "AutoBot is already running a mission.")
	}
	if !s.Player.Docked() {
		return fail(CodeNotDocked, "You must be docked at a planet to start the AutoBot.")
	}
	if cfg.TradeQuantity <= 0 || cfg.Duration <= 0 {
		return fail(CodeInvalidArgument, "Trade quantity and mission duration must be positive.")
	}
	origin := s.CurrentPlanet()
	destination := s.Galaxy.PlanetByID(cfg.DestinationPlanetID)
	if destination == nil {
		return fail(CodePlanetNotFound, "No such destination planet.")
	}
	if destination.ID == origin.ID {
		return fail(CodeInvalidArgument, "Destination must differ from the origin planet.")
	}
	if origin.MarketFor(cfg.GoodID) == nil {
		return fail(CodeGoodUnavailable, "The origin planet does not trade this good.")
	}

	next := s.Clone()
	bot := &AutoBotState{
		IsActive:            true,
		StartTime:           now,
		EndTime:             now.Add(cfg.Duration),
		OriginPlanetID:      origin.ID,
		DestinationPlanetID: destination.ID,
		GoodID:              cfg.GoodID,
		TradeQuantity:       cfg.TradeQuantity,
		CurrentTask:         TaskBuying,
	}
	bot.AppendLog(now, fmt.Sprintf("Mission started: %s from %s to %s until %s.",
		cfg.GoodID, origin.Name, destination.Name, bot.EndTime.Format("15:04:05")))
	next.AutoBot = bot
	return ok(next, "AutoBot mission started.")
}

// StopAutoBot aborts the mission. Any in-flight travel still resolves on its
// own; only the bot goes away.
func StopAutoBot(s GameState, now time.Time) Result {
	if !s.AutoBotActive() {
		return fail(CodeAutoBotInactive, "No AutoBot mission is running.")
	}
	next := s.Clone()
	next.AutoBot = nil
	next.LastUpdated = now
	return ok(next, "AutoBot mission stopped.")
}
