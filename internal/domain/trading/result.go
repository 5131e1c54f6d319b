package trading

// ResultCode classifies how a mutator resolved. Every failure is recoverable;
// no mutator panics or leaves a partial state behind.
type ResultCode string

const (
	CodeOK ResultCode = "OK"

	CodeInsufficientFunds ResultCode = "INSUFFICIENT_FUNDS"
	CodeInsufficientCargo ResultCode = "INSUFFICIENT_CARGO"
	CodeInsufficientGoods ResultCode = "INSUFFICIENT_GOODS"
	CodeGoodUnavailable   ResultCode = "GOOD_UNAVAILABLE"
	CodePlanetNotFound    ResultCode = "PLANET_NOT_FOUND"
	CodeAlreadyFull       ResultCode = "ALREADY_FULL"
	CodeMaxLevelReached   ResultCode = "MAX_LEVEL_REACHED"
	CodeAlreadyTraveling  ResultCode = "ALREADY_TRAVELING"
	CodeAlreadyDocked     ResultCode = "ALREADY_DOCKED"
	CodeShipWrecked       ResultCode = "SHIP_WRECKED"
	CodeNotDocked         ResultCode = "NOT_DOCKED"
	CodeLastPlanet        ResultCode = "LAST_PLANET"
	CodePlanetOccupied    ResultCode = "PLANET_OCCUPIED"
	CodePlanetOnMission   ResultCode = "PLANET_ON_MISSION"
	CodeAutoBotActive     ResultCode = "AUTOBOT_ACTIVE"
	CodeAutoBotInactive   ResultCode = "AUTOBOT_INACTIVE"
	CodeInvalidArgument   ResultCode = "INVALID_ARGUMENT"
	CodeMarketGenFailed   ResultCode = "MARKET_GENERATION_FAILED"
)

// Result is the tagged outcome of a mutator: success carries the next
// snapshot, failure carries only the reason. The input state is untouched
// either way.
type Result struct {
	State   *GameState
	Code    ResultCode
	Message string
}

func (r Result) OK() bool { return r.Code == CodeOK }

func ok(state GameState, message string) Result {
	return Result{State: &state, Code: CodeOK, Message: message}
}

func fail(code ResultCode, message string) Result {
	return Result{Code: code, Message: message}
}
