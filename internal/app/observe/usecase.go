package observe

import (
	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/domain/trading"
)

// UseCase exposes read models over the committed snapshot.
type UseCase struct {
	State *gamestate.Container
}

// GameView is the full snapshot plus derived display fields.
type GameView struct {
	State            trading.GameState `json:"state"`
	DurabilityReport string            `json:"durabilityReport"`
	CargoLoad        int               `json:"cargoLoad"`
}

func (u UseCase) Game() GameView {
	s := u.State.Snapshot()
	return GameView{
		State:            s,
		DurabilityReport: trading.DurabilityReport(s),
		CargoLoad:        s.Player.Ship.Cargo.Load(),
	}
}

// PriceRow is one good's prices across every planet, the galaxy-wide price
// overview traders plan routes with.
type PriceRow struct {
	GoodID   string            `json:"goodId"`
	GoodName string            `json:"goodName"`
	Buy      map[string]int    `json:"buy"`
	Sell     map[string]int    `json:"sell"`
}

func (u UseCase) PriceTable() []PriceRow {
	s := u.State.Snapshot()
	rows := make([]PriceRow, 0, len(s.Galaxy.Goods))
	for _, good := range s.Galaxy.Goods {
		row := PriceRow{
			GoodID:   good.ID,
			GoodName: good.Name,
			Buy:      make(map[string]int, len(s.Galaxy.Planets)),
			Sell:     make(map[string]int, len(s.Galaxy.Planets)),
		}
		for i := range s.Galaxy.Planets {
			planet := &s.Galaxy.Planets[i]
			if entry := planet.MarketFor(good.ID); entry != nil {
				row.Buy[planet.ID] = entry.BuyPrice
				row.Sell[planet.ID] = entry.SellPrice
			}
		}
		rows = append(rows, row)
	}
	return rows
}
