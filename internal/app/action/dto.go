package action

import "galaxytrader/internal/domain/trading"

type Type string

const (
	TypeTravel  Type = "travel"
	TypeBuy     Type = "buy"
	TypeSell    Type = "sell"
	TypeRepair  Type = "repair"
	TypeUpgrade Type = "upgrade"
)

// Request is one player-initiated action. Fields beyond Type are read
// per-action: PlanetID for travel, GoodID+Quantity for trades, Amount for
// repair, Track for upgrades.
type Request struct {
	Type     Type                 `json:"type"`
	PlanetID string               `json:"planetId,omitempty"`
	GoodID   string               `json:"goodId,omitempty"`
	Quantity int                  `json:"quantity,omitempty"`
	Amount   int                  `json:"amount,omitempty"`
	Track    trading.UpgradeTrack `json:"track,omitempty"`
}

type Response struct {
	Success bool               `json:"success"`
	Code    trading.ResultCode `json:"code"`
	Message string             `json:"message"`
	State   *trading.GameState `json:"state,omitempty"`
}

func responseFrom(result trading.Result) Response {
	return Response{
		Success: result.OK(),
		Code:    result.Code,
		Message: result.Message,
		State:   result.State,
	}
}
