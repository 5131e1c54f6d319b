package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Database struct {
		// DSN empty means the in-memory gateway: the world lives and dies
		// with the process.
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	MarketService struct {
		// URL empty means the procedural generator.
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"market_service"`

	Sim struct {
		MarketDriftSeconds    int `yaml:"market_drift_seconds"`
		TravelPollSeconds     int `yaml:"travel_poll_seconds"`
		AutoBotTickSeconds    int `yaml:"autobot_tick_seconds"`
		AutosaveNoticeSeconds int `yaml:"autosave_notice_seconds"`
	} `yaml:"sim"`
}

func Default() Config {
	var cfg Config
	cfg.Server.Addr = ":8080"
	cfg.MarketService.TimeoutSeconds = 30
	cfg.Sim.MarketDriftSeconds = 10
	cfg.Sim.TravelPollSeconds = 1
	cfg.Sim.AutoBotTickSeconds = 5
	cfg.Sim.AutosaveNoticeSeconds = 30
	return cfg
}

// Load reads the YAML file if present and then applies environment overrides,
// so a bare environment-only deployment needs no file at all.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Server.Addr = strEnv("GALAXY_SERVER_ADDR", cfg.Server.Addr)
	cfg.Database.DSN = strEnv("GALAXY_DB_DSN", cfg.Database.DSN)
	cfg.MarketService.URL = strEnv("GALAXY_MARKET_SERVICE_URL", cfg.MarketService.URL)
	cfg.MarketService.TimeoutSeconds = intEnv("GALAXY_MARKET_SERVICE_TIMEOUT", cfg.MarketService.TimeoutSeconds)
	cfg.Sim.MarketDriftSeconds = intEnv("GALAXY_MARKET_DRIFT_SECONDS", cfg.Sim.MarketDriftSeconds)
	cfg.Sim.TravelPollSeconds = intEnv("GALAXY_TRAVEL_POLL_SECONDS", cfg.Sim.TravelPollSeconds)
	cfg.Sim.AutoBotTickSeconds = intEnv("GALAXY_AUTOBOT_TICK_SECONDS", cfg.Sim.AutoBotTickSeconds)
	cfg.Sim.AutosaveNoticeSeconds = intEnv("GALAXY_AUTOSAVE_NOTICE_SECONDS", cfg.Sim.AutosaveNoticeSeconds)
	return cfg, nil
}

func (c Config) MarketServiceTimeout() time.Duration {
	return time.Duration(c.MarketService.TimeoutSeconds) * time.Second
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
