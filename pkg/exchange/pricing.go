package exchange

import (
	"math"

	"github.com/gnoobs75/Expedition-sub004/pkg/catalog"
)

// Base quote multipliers by station role. A producer dumps its own
// output cheaply and pays little to buy it back; a consumer pays a
// premium and charges one.
const (
	neutralBuyMult   = 1.0
	neutralSellMult  = 0.8
	producerBuyMult  = 0.6
	producerSellMult = 0.3
	consumerBuyMult  = 1.4
	consumerSellMult = 1.2
)

// Quote derives the station's current buy/sell prices for a good.
// Unknown goods quote as {0,0}; a known good at an unknown station
// falls back to the neutral spread on its base price. Prices truncate
// toward zero so repeated quotes are reproducible integers.
func (e *Exchange) Quote(goodID, stationID string) Quote {
	good, ok := e.catalog.Good(goodID)
	if !ok {
		return Quote{}
	}
	if _, ok := e.catalog.Station(stationID); !ok {
		return Quote{
			Buy:  good.BasePrice,
			Sell: floorPrice(good.BasePrice, neutralSellMult),
		}
	}

	buyMult, sellMult := neutralBuyMult, neutralSellMult
	switch e.catalog.Role(stationID, goodID) {
	case catalog.RoleProducer:
		buyMult, sellMult = producerBuyMult, producerSellMult
	case catalog.RoleConsumer:
		buyMult, sellMult = consumerBuyMult, consumerSellMult
	}

	mod := e.supply.Modifier(Instrument{StationID: stationID, GoodID: goodID})
	return Quote{
		Buy:  floorPrice(good.BasePrice, buyMult*mod),
		Sell: floorPrice(good.BasePrice, sellMult*mod),
	}
}

// BestRoute scans every other station and returns the one paying the
// highest margin over buying the good at the source. Ties keep the
// first station in catalog order; no profitable destination returns a
// zero Route.
func (e *Exchange) BestRoute(goodID, sourceStationID string) Route {
	source := e.Quote(goodID, sourceStationID)

	var best Route
	for _, station := range e.catalog.Stations() {
		if station.ID == sourceStationID {
			continue
		}
		profit := e.Quote(goodID, station.ID).Sell - source.Buy
		if profit > best.Profit {
			best = Route{Profit: profit, Destination: station.ID}
		}
	}
	return best
}

func floorPrice(base int64, mult float64) int64 {
	return int64(math.Floor(float64(base) * mult))
}
