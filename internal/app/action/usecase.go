package action

import (
	"context"
	"errors"
	"time"

	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/domain/trading"
)

var ErrInvalidRequest = errors.New("invalid action request")

// UseCase executes manual player actions against the committed snapshot.
// While an AutoBot mission is active the ship has a single agent: every manual
// action is rejected outright.
type UseCase struct {
	State *gamestate.Container
	Now   func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	mutate, err := u.mutatorFor(req)
	if err != nil {
		return Response{}, err
	}

	result := u.State.Apply(ctx, func(s trading.GameState) trading.Result {
		if s.AutoBotActive() {
			return trading.Result{
				Code:    trading.CodeAutoBotActive,
				Message: "AutoBot has the helm. Stop the mission to act manually.",
			}
		}
		return mutate(s)
	})
	return responseFrom(result), nil
}

func (u UseCase) mutatorFor(req Request) (func(trading.GameState) trading.Result, error) {
	switch req.Type {
	case TypeTravel:
		if req.PlanetID == "" {
			return nil, ErrInvalidRequest
		}
		now := u.now()
		return func(s trading.GameState) trading.Result {
			return trading.InitiateTravel(s, req.PlanetID, now)
		}, nil
	case TypeBuy:
		if req.GoodID == "" {
			return nil, ErrInvalidRequest
		}
		return func(s trading.GameState) trading.Result {
			return trading.Buy(s, req.GoodID, req.Quantity)
		}, nil
	case TypeSell:
		if req.GoodID == "" {
			return nil, ErrInvalidRequest
		}
		return func(s trading.GameState) trading.Result {
			return trading.Sell(s, req.GoodID, req.Quantity)
		}, nil
	case TypeRepair:
		return func(s trading.GameState) trading.Result {
			return trading.Repair(s, req.Amount)
		}, nil
	case TypeUpgrade:
		return func(s trading.GameState) trading.Result {
			return trading.Upgrade(s, req.Track)
		}, nil
	default:
		return nil, ErrInvalidRequest
	}
}

// DurabilityReport is the read-only hull status query; it never mutates.
func (u UseCase) DurabilityReport() string {
	snapshot := u.State.Snapshot()
	return trading.DurabilityReport(snapshot)
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
