package memory

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"galaxytrader/internal/adapter/repo/savecodec"
	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/trading"
)

// GameStateRepo is the in-memory persistence gateway: one save slot holding
// an encoded blob, so tests and the no-database mode exercise the same codec
// path as the gorm gateway.
type GameStateRepo struct {
	mu   sync.Mutex
	blob []byte

	Now func() time.Time
	Rng *rand.Rand
}

func NewGameStateRepo(rng *rand.Rand) *GameStateRepo {
	return &GameStateRepo{Rng: rng}
}

// Seed pre-populates the slot, bypassing Save. Tests use it to plant corrupt
// or legacy blobs.
func (r *GameStateRepo) Seed(blob []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = append([]byte(nil), blob...)
}

func (r *GameStateRepo) Load(ctx context.Context) (trading.GameState, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.blob == nil {
		return r.freshLocked(ctx, "no saved game found")
	}
	state, err := savecodec.Decode(r.blob)
	if err != nil {
		if !errors.Is(err, ports.ErrIntegrity) {
			log.Printf("memory: unreadable save: %v", err)
		}
		return r.freshLocked(ctx, "saved game rejected: "+err.Error())
	}
	return state, false, nil
}

func (r *GameStateRepo) Save(_ context.Context, state trading.GameState) error {
	data, err := savecodec.Encode(state)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = data
	return nil
}

func (r *GameStateRepo) freshLocked(_ context.Context, reason string) (trading.GameState, bool, error) {
	log.Printf("memory: %s, creating a new world", reason)
	state := trading.NewGameState(r.now(), r.rng())
	data, err := savecodec.Encode(state)
	if err != nil {
		return trading.GameState{}, false, err
	}
	r.blob = data
	return state, true, nil
}

func (r *GameStateRepo) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *GameStateRepo) rng() *rand.Rand {
	if r.Rng == nil {
		r.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r.Rng
}
