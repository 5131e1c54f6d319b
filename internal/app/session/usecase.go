package session

import (
	"context"
	"math/rand"
	"time"

	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/trading"
)

// UseCase covers the explicit save-file operations: start over, save now,
// reload from disk. Commits autosave anyway; these exist for the player.
type UseCase struct {
	State *gamestate.Container
	Repo  ports.GameStateRepository
	Now   func() time.Time
	Rng   *rand.Rand
}

// NewGame rebuilds the world with fresh planet placement and overwrites the
// save. The running AutoBot, if any, goes with the old world.
func (u UseCase) NewGame(ctx context.Context) trading.GameState {
	state := trading.NewGameState(u.now(), u.Rng)
	u.State.Replace(ctx, state)
	if u.State.Notifier != nil {
		u.State.Notifier.Notify("A new journey begins!", ports.SeverityInfo)
	}
	return state
}

// Save persists the committed snapshot on demand.
func (u UseCase) Save(ctx context.Context) error {
	if err := u.Repo.Save(ctx, u.State.Snapshot()); err != nil {
		if u.State.Notifier != nil {
			u.State.Notifier.Notify("Saving failed.", ports.SeverityError)
		}
		return err
	}
	if u.State.Notifier != nil {
		u.State.Notifier.Notify("Game saved!", ports.SeveritySuccess)
	}
	return nil
}

// Load replaces the committed snapshot with whatever the gateway returns; a
// corrupt or missing save comes back as a fresh world with isNewGame set.
func (u UseCase) Load(ctx context.Context) (trading.GameState, bool, error) {
	state, isNew, err := u.Repo.Load(ctx)
	if err != nil {
		if u.State.Notifier != nil {
			u.State.Notifier.Notify("Loading failed.", ports.SeverityError)
		}
		return trading.GameState{}, false, err
	}
	u.State.Replace(ctx, state)
	if u.State.Notifier != nil {
		if isNew {
			u.State.Notifier.Notify("Saved data was missing or corrupted. A new game was started.", ports.SeverityError)
		} else {
			u.State.Notifier.Notify("Game loaded successfully!", ports.SeveritySuccess)
		}
	}
	return state, isNew, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
