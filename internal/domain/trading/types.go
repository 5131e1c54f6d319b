package trading

import (
	"time"

	"galaxytrader/internal/domain/economy"
)

type CargoItem struct {
	GoodID   string `json:"goodId"`
	Quantity int    `json:"quantity"`
}

type CargoHold struct {
	Capacity int         `json:"capacity"`
	Items    []CargoItem `json:"items"`
}

// Load is the total quantity across all cargo lines.
func (c CargoHold) Load() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c CargoHold) QuantityOf(goodID string) int {
	for _, item := range c.Items {
		if item.GoodID == goodID {
			return item.Quantity
		}
	}
	return 0
}

func (c *CargoHold) add(goodID string, quantity int) {
	for i := range c.Items {
		if c.Items[i].GoodID == goodID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CargoItem{GoodID: goodID, Quantity: quantity})
}

// remove decrements a cargo line and prunes it at zero. Zero-quantity lines
// never persist.
func (c *CargoHold) remove(goodID string, quantity int) {
	for i := range c.Items {
		if c.Items[i].GoodID != goodID {
			continue
		}
		c.Items[i].Quantity -= quantity
		if c.Items[i].Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

type ShipUpgrades struct {
	Cargo      int `json:"cargo"`
	Durability int `json:"durability"`
}

type Ship struct {
	Name          string       `json:"name"`
	Durability    int          `json:"durability"`
	MaxDurability int          `json:"maxDurability"`
	Cargo         CargoHold    `json:"cargo"`
	Upgrades      ShipUpgrades `json:"upgrades"`
}

// TravelInfo exists only while the player is in transit.
type TravelInfo struct {
	OriginPlanetID      string    `json:"originPlanetId"`
	DestinationPlanetID string    `json:"destinationPlanetId"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
}

// PlayerState is either docked (CurrentPlanetID set) or in transit
// (IsTraveling with TravelInfo set), never both.
type PlayerState struct {
	Credits         int         `json:"credits"`
	CurrentPlanetID string      `json:"currentPlanetId"`
	Ship            Ship        `json:"ship"`
	IsTraveling     bool        `json:"isTraveling"`
	TravelInfo      *TravelInfo `json:"travelInfo,omitempty"`
}

func (p PlayerState) Docked() bool {
	return !p.IsTraveling && p.CurrentPlanetID != ""
}

type AutoBotTask string

const (
	TaskBuying          AutoBotTask = "BUYING"
	TaskTravelingToSell AutoBotTask = "TRAVELING_TO_SELL"
	TaskSelling         AutoBotTask = "SELLING"
	TaskTravelingToBuy  AutoBotTask = "TRAVELING_TO_BUY"
)

// AutoBotLogCap bounds the mission log; oldest entries are evicted first.
const AutoBotLogCap = 50

type AutoBotState struct {
	IsActive            bool        `json:"isActive"`
	StartTime           time.Time   `json:"startTime"`
	EndTime             time.Time   `json:"endTime"`
	OriginPlanetID      string      `json:"originPlanetId"`
	DestinationPlanetID string      `json:"destinationPlanetId"`
	GoodID              string      `json:"goodId"`
	TradeQuantity       int         `json:"tradeQuantity"`
	CurrentTask         AutoBotTask `json:"currentTask"`
	Logs                []string    `json:"logs"`
}

func (b *AutoBotState) AppendLog(now time.Time, message string) {
	line := now.Format("15:04:05") + " " + message
	b.Logs = append(b.Logs, line)
	if over := len(b.Logs) - AutoBotLogCap; over > 0 {
		b.Logs = b.Logs[over:]
	}
}

func (b AutoBotState) clone() AutoBotState {
	out := b
	out.Logs = make([]string, len(b.Logs))
	copy(out.Logs, b.Logs)
	return out
}

// GameState is the single root of mutation. Mutators take one by value and
// return a fresh snapshot; the input is never written through.
type GameState struct {
	Player      PlayerState    `json:"player"`
	Galaxy      economy.Galaxy `json:"galaxy"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Checksum    string         `json:"checksum"`
	AutoBot     *AutoBotState  `json:"autoBotState,omitempty"`
}

// Clone deep-copies the snapshot so the original stays valid after mutation.
func (s GameState) Clone() GameState {
	out := s
	out.Galaxy = s.Galaxy.Clone()
	out.Player.Ship.Cargo.Items = make([]CargoItem, len(s.Player.Ship.Cargo.Items))
	copy(out.Player.Ship.Cargo.Items, s.Player.Ship.Cargo.Items)
	if s.Player.TravelInfo != nil {
		info := *s.Player.TravelInfo
		out.Player.TravelInfo = &info
	}
	if s.AutoBot != nil {
		bot := s.AutoBot.clone()
		out.AutoBot = &bot
	}
	return out
}

// CurrentPlanet resolves the docked planet, nil while in transit.
func (s *GameState) CurrentPlanet() *economy.Planet {
	if s.Player.CurrentPlanetID == "" {
		return nil
	}
	return s.Galaxy.PlanetByID(s.Player.CurrentPlanetID)
}

func (s *GameState) AutoBotActive() bool {
	return s.AutoBot != nil && s.AutoBot.IsActive
}
