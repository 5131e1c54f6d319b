package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpadapter "galaxytrader/internal/adapter/http"
	marketproc "galaxytrader/internal/adapter/market/procedural"
	marketremote "galaxytrader/internal/adapter/market/remote"
	metricsinmem "galaxytrader/internal/adapter/metrics/inmemory"
	notifyhub "galaxytrader/internal/adapter/notify/hub"
	gormrepo "galaxytrader/internal/adapter/repo/gorm"
	memoryrepo "galaxytrader/internal/adapter/repo/memory"
	"galaxytrader/internal/app/action"
	"galaxytrader/internal/app/admin"
	"galaxytrader/internal/app/autobot"
	"galaxytrader/internal/app/gamestate"
	"galaxytrader/internal/app/observe"
	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/app/session"
	"galaxytrader/internal/config"
	"galaxytrader/internal/scheduler"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	rng := newRand(time.Now().UnixNano())
	repo := buildRepo(cfg, rng)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state, isNewGame, err := repo.Load(ctx)
	if err != nil {
		log.Fatalf("load game: %v", err)
	}

	hub := notifyhub.New()
	go hub.Run(ctx)

	kpi := metricsinmem.NewRecorder()
	container := gamestate.NewContainer(state, repo, hub, kpi)
	if isNewGame {
		hub.Notify("Welcome to Galaxy Trader! A new journey begins.", ports.SeverityInfo)
	} else {
		hub.Notify("Game loaded successfully.", ports.SeveritySuccess)
	}

	botUC := autobot.UseCase{State: container}
	h := httpadapter.Handler{
		ObserveUC: observe.UseCase{State: container},
		ActionUC:  action.UseCase{State: container},
		AdminUC:   admin.UseCase{State: container, Markets: buildMarketGenerator(cfg, rng), Rng: rng},
		BotUC:     botUC,
		SessionUC: session.UseCase{State: container, Repo: repo, Rng: rng},
		KPI:       kpi,
		WS:        hub.ServeWS,
	}

	sched := scheduler.Scheduler{
		State:    container,
		Bot:      botUC,
		Notifier: hub,
		Rng:      rng,
		Cfg: scheduler.Config{
			MarketDrift:    time.Duration(cfg.Sim.MarketDriftSeconds) * time.Second,
			TravelPoll:     time.Duration(cfg.Sim.TravelPollSeconds) * time.Second,
			AutoBotTick:    time.Duration(cfg.Sim.AutoBotTickSeconds) * time.Second,
			AutosaveNotice: time.Duration(cfg.Sim.AutosaveNoticeSeconds) * time.Second,
		},
	}
	go sched.Run(ctx)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("shutting down, stopping timers")
		cancel()
	}()

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)
	log.Printf("galaxytrader server listening on %s", cfg.Server.Addr)
	s.Spin()
}

// newRand builds the process-wide rand. The scheduler goroutine and the HTTP
// handlers all draw from it, so the source sits behind a mutex the same way
// math/rand guards its global source. Rand.Read keeps per-Rand state and must
// not be used on it.
func newRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

func configPath() string {
	if p := os.Getenv("GALAXY_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

func buildRepo(cfg config.Config, rng *rand.Rand) ports.GameStateRepository {
	if cfg.Database.DSN == "" {
		log.Println("no database DSN configured, using the in-memory save slot")
		return memoryrepo.NewGameStateRepo(rng)
	}
	db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	repo := gormrepo.NewGameStateRepo(db)
	repo.Rng = rng
	if err := repo.Migrate(context.Background()); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return repo
}

func buildMarketGenerator(cfg config.Config, rng *rand.Rand) ports.MarketGenerator {
	if cfg.MarketService.URL == "" {
		log.Println("no market service URL configured, using the procedural generator")
		return marketproc.New(rng)
	}
	return marketremote.New(cfg.MarketService.URL, cfg.MarketServiceTimeout(), rng)
}
