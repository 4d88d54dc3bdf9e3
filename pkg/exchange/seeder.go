package exchange

import (
	"context"
	"math"

	"github.com/gnoobs75/Expedition-sub004/pkg/catalog"
)

// SyntheticOwner tags NPC liquidity orders. Without them an instrument
// nobody trades would have an empty book and no price history.
const SyntheticOwner = "npc-market"

const (
	syntheticFloor = 3
	syntheticQtyLo = 5
	syntheticQtyHi = 20
	ladderStep     = 0.05
	askLadderStart = 0.95
	bidLadderStart = 1.05
)

// SeedLiquidity tops the station's instruments up to the synthetic
// floor: sell orders on goods the station produces, buy orders on
// goods it consumes. Seeding is idempotent — it never pushes a side
// past the floor, so repeated calls without intervening fills are
// safe.
func (e *Exchange) SeedLiquidity(ctx context.Context, stationID string) {
	station, ok := e.catalog.Station(stationID)
	if !ok {
		return
	}

	for _, goodID := range station.Produces {
		e.seedSide(ctx, Instrument{StationID: stationID, GoodID: goodID}, SideSell)
	}
	for _, goodID := range station.Consumes {
		// Producer role wins when a good is on both lists; its sell
		// side was already seeded above.
		if e.catalog.Role(stationID, goodID) != catalog.RoleConsumer {
			continue
		}
		e.seedSide(ctx, Instrument{StationID: stationID, GoodID: goodID}, SideBuy)
	}
}

// seedSide places enough synthetic orders to reach the floor. Prices
// form a ladder around the current quote: asks ascend from just under
// the station's buy price, bids descend from just over its sell price.
func (e *Exchange) seedSide(ctx context.Context, inst Instrument, side Side) {
	quote := e.Quote(inst.GoodID, inst.StationID)

	b := e.bookFor(inst)
	b.mu.Lock()
	resting := b.countBySide(SyntheticOwner, side)
	b.mu.Unlock()

	for i := resting; i < syntheticFloor; i++ {
		var price int64
		if side == SideSell {
			price = int64(math.Floor(float64(quote.Buy) * (askLadderStart + ladderStep*float64(i))))
		} else {
			price = int64(math.Floor(float64(quote.Sell) * (bidLadderStart - ladderStep*float64(i))))
		}
		if price <= 0 {
			continue
		}

		quantity := e.randQuantity(syntheticQtyLo, syntheticQtyHi)
		if _, _, err := e.PlaceOrder(ctx, side, inst, price, quantity, SyntheticOwner); err != nil {
			e.obs.LogErr(ctx, "exchange.seed: station=%s good=%s side=%s price=%d err=%v",
				inst.StationID, inst.GoodID, side, price, err)
		}
	}
}

// RefreshLiquidity purges exhausted synthetic orders and re-seeds
// every station. The host runs this on its liquidity tick, roughly
// every 60 seconds, and once when a station first comes into view.
func (e *Exchange) RefreshLiquidity(ctx context.Context) {
	e.mu.RLock()
	for _, b := range e.books {
		b.mu.Lock()
		b.purgeExhausted(SyntheticOwner)
		b.mu.Unlock()
	}
	e.mu.RUnlock()

	for _, station := range e.catalog.Stations() {
		e.SeedLiquidity(ctx, station.ID)
	}
}
