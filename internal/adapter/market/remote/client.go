// Package remote calls the external market generation service: given a planet
// draft and the good catalog it returns a full price table. The service is the
// only unbounded-latency collaborator in the system, so the client keeps a
// hard timeout and classifies every failure for the caller.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/economy"
	"galaxytrader/internal/domain/trading"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	client *resty.Client

	mu  sync.Mutex
	rng *rand.Rand
}

func New(baseURL string, timeout time.Duration, rng *rand.Rand) *Client {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	return &Client{client: c, rng: rng}
}

type generateRequest struct {
	Planet trading.PlanetDraft `json:"planet"`
	Goods  []economy.Good      `json:"goods"`
}

type generateResponse struct {
	SpecialtyGoodID string                `json:"specialtyGoodId"`
	Market          []economy.MarketEntry `json:"market"`
}

func (c *Client) Generate(ctx context.Context, draft trading.PlanetDraft, goods []economy.Good) ([]economy.MarketEntry, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(generateRequest{Planet: draft, Goods: goods}).
		Post("/v1/markets")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrMarketGenUnavailable, err)
	}
	if resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w: service returned HTTP %d", ports.ErrMarketGenUnavailable, resp.StatusCode())
	}

	var body generateResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrMarketGenMalformed, err)
	}
	if err := ports.ValidateMarket(body.Market, goods); err != nil {
		return nil, err
	}

	c.clampSpecialty(body, goods)
	return body.Market, nil
}

// clampSpecialty enforces the cheap-specialty rule locally when the service
// names a specialty good but failed to discount it. Generate runs on
// concurrent request paths, so the rand draw is guarded.
func (c *Client) clampSpecialty(body generateResponse, goods []economy.Good) {
	if body.SpecialtyGoodID == "" {
		return
	}
	var good *economy.Good
	for i := range goods {
		if goods[i].ID == body.SpecialtyGoodID {
			good = &goods[i]
			break
		}
	}
	if good == nil {
		return
	}
	for i := range body.Market {
		entry := &body.Market[i]
		if entry.GoodID != body.SpecialtyGoodID || entry.BuyPrice <= good.BasePrice {
			continue
		}
		c.mu.Lock()
		factor := 0.5 + c.rng.Float64()*0.2
		c.mu.Unlock()
		entry.BuyPrice = int(math.Round(float64(good.BasePrice) * factor))
		if entry.BuyPrice < 1 {
			entry.BuyPrice = 1
		}
		entry.SellPrice = int(math.Round(float64(entry.BuyPrice) * 0.9))
		if entry.SellPrice < 1 {
			entry.SellPrice = 1
		}
	}
}
