package economy

import "math"

// Good is a catalog entry. The catalog is fixed at world-build time.
type Good struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int    `json:"basePrice"`
}

// MarketEntry holds the per-planet prices for one good. BuyPrice is what the
// player pays, SellPrice what the planet pays the player.
type MarketEntry struct {
	GoodID    string `json:"goodId"`
	BuyPrice  int    `json:"buyPrice"`
	SellPrice int    `json:"sellPrice"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Planet struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Position    Position      `json:"position"`
	TaxRate     float64       `json:"taxRate"`
	Description string        `json:"description"`
	Color       string        `json:"color"`
	Market      []MarketEntry `json:"market"`
}

type Galaxy struct {
	Name    string   `json:"name"`
	Planets []Planet `json:"planets"`
	Goods   []Good   `json:"goods"`
}

func (p *Planet) MarketFor(goodID string) *MarketEntry {
	for i := range p.Market {
		if p.Market[i].GoodID == goodID {
			return &p.Market[i]
		}
	}
	return nil
}

func (p Planet) Clone() Planet {
	out := p
	out.Market = make([]MarketEntry, len(p.Market))
	copy(out.Market, p.Market)
	return out
}

func (g *Galaxy) PlanetByID(id string) *Planet {
	for i := range g.Planets {
		if g.Planets[i].ID == id {
			return &g.Planets[i]
		}
	}
	return nil
}

func (g *Galaxy) GoodByID(id string) *Good {
	for i := range g.Goods {
		if g.Goods[i].ID == id {
			return &g.Goods[i]
		}
	}
	return nil
}

func (g Galaxy) Clone() Galaxy {
	out := g
	out.Planets = make([]Planet, len(g.Planets))
	for i := range g.Planets {
		out.Planets[i] = g.Planets[i].Clone()
	}
	out.Goods = make([]Good, len(g.Goods))
	copy(out.Goods, g.Goods)
	return out
}

// Distance is the 3-D euclidean distance between two positions, used for fuel
// cost and travel duration.
func Distance(a, b Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Distance2D ignores depth. Planet placement only separates on the map plane.
func Distance2D(a, b Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
