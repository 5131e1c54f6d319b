package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"galaxytrader/internal/adapter/repo/memory"
	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/trading"
)

type recordingNotifier struct {
	messages   []string
	severities []ports.Severity
}

func (n *recordingNotifier) Notify(message string, severity ports.Severity) {
	n.messages = append(n.messages, message)
	n.severities = append(n.severities, severity)
}

func newSessionHarness(t *testing.T) (UseCase, *gamestate.Container, *memory.GameStateRepo, *recordingNotifier) {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	repo := memory.NewGameStateRepo(rand.New(rand.NewSource(21)))
	repo.Now = now

	initial, _, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("initial load: %v", err)
	}
	notifier := &recordingNotifier{}
	container := gamestate.NewContainer(initial, repo, notifier, nil)
	u := UseCase{State: container, Repo: repo, Now: now, Rng: rand.New(rand.NewSource(22))}
	return u, container, repo, notifier
}

func TestNewGameReplacesWorldAndPersists(t *testing.T) {
	u, container, repo, notifier := newSessionHarness(t)
	ctx := context.Background()

	// Dirty the running world first.
	container.Advance(ctx, func(s trading.GameState) (*trading.GameState, string) {
		next := s.Clone()
		next.Player.Credits = 1
		return &next, ""
	})

	state := u.NewGame(ctx)
	if got, want := state.Player.Credits, trading.StartingCredits; got != want {
		t.Fatalf("fresh credits mismatch: got=%d want=%d", got, want)
	}
	if got, want := container.Snapshot().Player.Credits, trading.StartingCredits; got != want {
		t.Fatalf("container not replaced: got=%d want=%d", got, want)
	}
	persisted, isNew, err := repo.Load(ctx)
	if err != nil || isNew {
		t.Fatalf("fresh world not persisted: err=%v isNew=%v", err, isNew)
	}
	if persisted.Player.Credits != trading.StartingCredits {
		t.Fatalf("persisted credits mismatch: %d", persisted.Player.Credits)
	}
	if len(notifier.messages) == 0 || notifier.messages[len(notifier.messages)-1] != "A new journey begins!" {
		t.Fatalf("expected new-journey notification, got %v", notifier.messages)
	}
}

func TestSaveAnnouncesSuccess(t *testing.T) {
	u, _, _, notifier := newSessionHarness(t)
	if err := u.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(notifier.messages) == 0 || notifier.messages[len(notifier.messages)-1] != "Game saved!" {
		t.Fatalf("expected save notification, got %v", notifier.messages)
	}
	if notifier.severities[len(notifier.severities)-1] != ports.SeveritySuccess {
		t.Fatalf("expected success severity, got %v", notifier.severities)
	}
}

func TestLoadReplacesContainerState(t *testing.T) {
	u, container, repo, notifier := newSessionHarness(t)
	ctx := context.Background()

	// Persist a marker, then dirty the container without saving.
	marker := container.Snapshot()
	marker.Player.Credits = 4242
	if err := repo.Save(ctx, marker); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	state, isNew, err := u.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if isNew {
		t.Fatalf("expected an existing save")
	}
	if state.Player.Credits != 4242 || container.Snapshot().Player.Credits != 4242 {
		t.Fatalf("container not replaced by load: %d / %d",
			state.Player.Credits, container.Snapshot().Player.Credits)
	}
	if notifier.messages[len(notifier.messages)-1] != "Game loaded successfully!" {
		t.Fatalf("expected load notification, got %v", notifier.messages)
	}
}

func TestLoadCorruptSaveFallsBackWithWarning(t *testing.T) {
	u, _, repo, notifier := newSessionHarness(t)
	repo.Seed([]byte(`{"player":{"credits":123},"checksum":"bad"}`))

	state, isNew, err := u.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !isNew {
		t.Fatalf("corrupt save must come back as new")
	}
	if state.Player.Credits == 123 {
		t.Fatalf("corrupt credits must not survive")
	}
	last := len(notifier.messages) - 1
	if notifier.messages[last] != "Saved data was missing or corrupted. A new game was started." {
		t.Fatalf("expected corruption warning, got %q", notifier.messages[last])
	}
	if notifier.severities[last] != ports.SeverityError {
		t.Fatalf("expected error severity, got %v", notifier.severities[last])
	}
}

type failingRepo struct{}

func (failingRepo) Load(ctx context.Context) (trading.GameState, bool, error) {
	return trading.GameState{}, false, errors.New("backend down")
}

func (failingRepo) Save(ctx context.Context, state trading.GameState) error {
	return errors.New("backend down")
}

func TestSaveAndLoadSurfaceRepoErrors(t *testing.T) {
	notifier := &recordingNotifier{}
	container := gamestate.NewContainer(trading.GameState{}, nil, notifier, nil)
	u := UseCase{State: container, Repo: failingRepo{}, Rng: rand.New(rand.NewSource(1))}

	if err := u.Save(context.Background()); err == nil {
		t.Fatalf("expected save error")
	}
	if notifier.messages[len(notifier.messages)-1] != "Saving failed." {
		t.Fatalf("expected save failure notification, got %v", notifier.messages)
	}

	if _, _, err := u.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if notifier.messages[len(notifier.messages)-1] != "Loading failed." {
		t.Fatalf("expected load failure notification, got %v", notifier.messages)
	}
}
