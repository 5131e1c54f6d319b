package gamestate

import (
	"context"
	"log"
	"sync"

	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/trading"
)

// Container owns the committed snapshot. It is the single writer: every
// mutation goes through Apply or Advance, which serialize on one mutex, run a
// mutator against the committed snapshot, and commit the returned copy.
// Readers always see a fully-committed prior snapshot, never a torn one.
type Container struct {
	mu      sync.Mutex
	current trading.GameState

	Repo     ports.GameStateRepository
	Notifier ports.Notifier
	Metrics  ports.ActionMetrics
}

func NewContainer(initial trading.GameState, repo ports.GameStateRepository, notifier ports.Notifier, metrics ports.ActionMetrics) *Container {
	return &Container{current: initial, Repo: repo, Notifier: notifier, Metrics: metrics}
}

// Snapshot returns a deep copy of the committed state.
func (c *Container) Snapshot() trading.GameState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Clone()
}

// Apply runs a player-facing mutator. On success the new snapshot is
// committed, persisted and announced; on failure the committed state is left
// untouched and the reason is surfaced as an error notification.
func (c *Container) Apply(ctx context.Context, mutate func(trading.GameState) trading.Result) trading.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := mutate(c.current)
	if !result.OK() {
		if c.Metrics != nil {
			c.Metrics.RecordRejected(result.Code)
		}
		if c.Notifier != nil && result.Message != "" {
			c.Notifier.Notify(result.Message, ports.SeverityError)
		}
		return result
	}

	c.commitLocked(ctx, *result.State)
	if c.Metrics != nil {
		c.Metrics.RecordCommit(result.Code)
	}
	if c.Notifier != nil && result.Message != "" {
		c.Notifier.Notify(result.Message, ports.SeveritySuccess)
	}
	return result
}

// Advance runs a timer-driven mutator: nil means nothing to do, otherwise the
// returned snapshot is committed and a non-empty message is announced as info.
// Drift, travel completion and AutoBot ticks all come through here.
func (c *Container) Advance(ctx context.Context, tick func(trading.GameState) (*trading.GameState, string)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, message := tick(c.current)
	if next == nil {
		return false
	}
	c.commitLocked(ctx, *next)
	if c.Notifier != nil && message != "" {
		c.Notifier.Notify(message, ports.SeverityInfo)
	}
	return true
}

// Replace swaps in a whole new snapshot (new game, explicit load).
func (c *Container) Replace(ctx context.Context, state trading.GameState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commitLocked(ctx, state)
}

func (c *Container) commitLocked(ctx context.Context, next trading.GameState) {
	c.current = next
	if c.Repo == nil {
		return
	}
	// Autosave on every commit. A failed save never rolls back the committed
	// state; the world keeps running on the in-memory snapshot.
	if err := c.Repo.Save(ctx, c.current); err != nil {
		log.Printf("gamestate: autosave failed: %v", err)
	}
}
