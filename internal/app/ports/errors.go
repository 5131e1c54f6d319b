package ports

import "errors"

var (
	// ErrIntegrity marks a save whose digest no longer matches its contents.
	ErrIntegrity = errors.New("integrity check failed")

	// Market generation failure classes. Unavailable covers transport and
	// service-side errors; malformed covers responses that break the contract.
	ErrMarketGenUnavailable = errors.New("market generation unavailable")
	ErrMarketGenMalformed   = errors.New("market generation response malformed")
)
