// Package catalog holds the static reference data for the exchange:
// the tradeable goods and the stations that produce or consume them.
// Catalog data is immutable after construction.
package catalog

// Good is one tradeable commodity.
type Good struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	BasePrice   int64  `json:"basePrice"` // in credits
	UnitVolume  int64  `json:"unitVolume"`
	Description string `json:"description"`
}

// Station is a place that trades goods. A station produces some goods
// and consumes others; everything else it trades at neutral terms.
type Station struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Produces []string `json:"produces"`
	Consumes []string `json:"consumes"`
}

// Role is a station's relationship to one good.
type Role uint8

const (
	RoleNeutral Role = iota
	RoleProducer
	RoleConsumer
)

func (r Role) String() string {
	switch r {
	case RoleProducer:
		return "producer"
	case RoleConsumer:
		return "consumer"
	default:
		return "neutral"
	}
}

type Catalog struct {
	goods        map[string]Good
	stations     map[string]Station
	stationOrder []string
	goodOrder    []string
}

// New builds a catalog from good and station lists. Input order is
// preserved so scans over the catalog are deterministic.
func New(goods []Good, stations []Station) *Catalog {
	c := &Catalog{
		goods:    make(map[string]Good, len(goods)),
		stations: make(map[string]Station, len(stations)),
	}
	for _, g := range goods {
		if _, exists := c.goods[g.ID]; exists {
			continue
		}
		c.goods[g.ID] = g
		c.goodOrder = append(c.goodOrder, g.ID)
	}
	for _, s := range stations {
		if _, exists := c.stations[s.ID]; exists {
			continue
		}
		c.stations[s.ID] = s
		c.stationOrder = append(c.stationOrder, s.ID)
	}
	return c
}

func (c *Catalog) Good(id string) (Good, bool) {
	g, ok := c.goods[id]
	return g, ok
}

func (c *Catalog) Station(id string) (Station, bool) {
	s, ok := c.stations[id]
	return s, ok
}

// Role reports the station's role for a good. The produce list is
// checked first, so a good listed on both sides counts as produced.
func (c *Catalog) Role(stationID, goodID string) Role {
	s, ok := c.stations[stationID]
	if !ok {
		return RoleNeutral
	}
	for _, id := range s.Produces {
		if id == goodID {
			return RoleProducer
		}
	}
	for _, id := range s.Consumes {
		if id == goodID {
			return RoleConsumer
		}
	}
	return RoleNeutral
}

// Stations returns all stations in catalog order.
func (c *Catalog) Stations() []Station {
	out := make([]Station, 0, len(c.stationOrder))
	for _, id := range c.stationOrder {
		out = append(out, c.stations[id])
	}
	return out
}

// Goods returns all goods in catalog order.
func (c *Catalog) Goods() []Good {
	out := make([]Good, 0, len(c.goodOrder))
	for _, id := range c.goodOrder {
		out = append(out, c.goods[id])
	}
	return out
}
