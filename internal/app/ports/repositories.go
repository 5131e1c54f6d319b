package ports

import (
	"context"

	"galaxytrader/internal/domain/trading"
)

// GameStateRepository is the persistence gateway for the one snapshot root.
//
// Load never returns a state that fails digest verification: on missing or
// corrupt data it fabricates a fresh world, persists it, and reports
// isNewGame=true. Save recomputes the digest and strips any AutoBot state
// before writing; missions do not survive a reload.
type GameStateRepository interface {
	Load(ctx context.Context) (state trading.GameState, isNewGame bool, err error)
	Save(ctx context.Context, state trading.GameState) error
}
