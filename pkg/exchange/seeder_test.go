package exchange

import (
	"context"
	"testing"
)

func TestSeedLiquidityProducerAskLadder(t *testing.T) {
	e := newTestExchange()
	ctx := context.Background()

	e.SeedLiquidity(ctx, "mine")

	orders := e.OrdersByOwner(ctx, SyntheticOwner)
	var asks []Order
	for _, o := range orders {
		if o.Instrument == (Instrument{StationID: "mine", GoodID: "ore"}) && o.Side == SideSell {
			asks = append(asks, o)
		}
	}
	if len(asks) != 3 {
		t.Fatalf("expected 3 synthetic asks on produced good, got %d", len(asks))
	}

	// Quote buy for ore at the mine is 60; ladder is 0.95/1.00/1.05.
	wantPrices := map[int64]bool{57: true, 60: true, 63: true}
	for _, o := range asks {
		if !wantPrices[o.Price] {
			t.Fatalf("unexpected ladder price %d", o.Price)
		}
		delete(wantPrices, o.Price)
		if o.Quantity < syntheticQtyLo || o.Quantity > syntheticQtyHi {
			t.Fatalf("quantity %d outside [%d, %d]", o.Quantity, syntheticQtyLo, syntheticQtyHi)
		}
	}
}

func TestSeedLiquidityConsumerBidLadder(t *testing.T) {
	e := newTestExchange()
	ctx := context.Background()

	e.SeedLiquidity(ctx, "mine")

	var bids []Order
	for _, o := range e.OrdersByOwner(ctx, SyntheticOwner) {
		if o.Instrument == (Instrument{StationID: "mine", GoodID: "food"}) && o.Side == SideBuy {
			bids = append(bids, o)
		}
	}
	if len(bids) != 3 {
		t.Fatalf("expected 3 synthetic bids on consumed good, got %d", len(bids))
	}

	// Quote sell for food at the mine (consumer) is 48; descending
	// ladder 1.05/1.00/0.95.
	wantPrices := map[int64]bool{50: true, 48: true, 45: true}
	for _, o := range bids {
		if !wantPrices[o.Price] {
			t.Fatalf("unexpected ladder price %d", o.Price)
		}
		delete(wantPrices, o.Price)
	}
}

func TestSeedLiquidityIsIdempotent(t *testing.T) {
	e := newTestExchange()
	ctx := context.Background()

	e.SeedLiquidity(ctx, "mine")
	first := len(e.OrdersByOwner(ctx, SyntheticOwner))

	e.SeedLiquidity(ctx, "mine")
	e.SeedLiquidity(ctx, "mine")
	if again := len(e.OrdersByOwner(ctx, SyntheticOwner)); again != first {
		t.Fatalf("seeding is not idempotent: %d then %d orders", first, again)
	}
}

func TestSeedLiquidityTopsUpAfterCancel(t *testing.T) {
	e := newTestExchange()
	ctx := context.Background()
	inst := Instrument{StationID: "mine", GoodID: "ore"}

	e.SeedLiquidity(ctx, "mine")

	var victim int64
	for _, o := range e.OrdersByOwner(ctx, SyntheticOwner) {
		if o.Instrument == inst {
			victim = o.ID
			break
		}
	}
	e.CancelOrder(ctx, inst, victim)

	e.SeedLiquidity(ctx, "mine")
	count := 0
	for _, o := range e.OrdersByOwner(ctx, SyntheticOwner) {
		if o.Instrument == inst {
			count++
		}
	}
	if count != 3 {
		t.Fatalf("expected seeding to restore the floor of 3, got %d", count)
	}
}

func TestSeedLiquidityUnknownStation(t *testing.T) {
	e := newTestExchange()
	ctx := context.Background()

	e.SeedLiquidity(ctx, "ghost-station")
	if got := len(e.OrdersByOwner(ctx, SyntheticOwner)); got != 0 {
		t.Fatalf("expected no orders for unknown station, got %d", got)
	}
}

func TestRefreshLiquiditySeedsEveryStation(t *testing.T) {
	e := newTestExchange()
	ctx := context.Background()

	e.RefreshLiquidity(ctx)

	instruments := map[Instrument]int{}
	for _, o := range e.OrdersByOwner(ctx, SyntheticOwner) {
		instruments[o.Instrument]++
	}

	// mine: ore asks + food bids; habitat: food asks + ore bids.
	// The depot produces and consumes nothing.
	want := []Instrument{
		{StationID: "mine", GoodID: "ore"},
		{StationID: "mine", GoodID: "food"},
		{StationID: "habitat", GoodID: "food"},
		{StationID: "habitat", GoodID: "ore"},
	}
	if len(instruments) != len(want) {
		t.Fatalf("expected %d seeded instruments, got %v", len(want), instruments)
	}
	for _, inst := range want {
		if instruments[inst] != 3 {
			t.Fatalf("expected 3 synthetic orders on %v, got %d", inst, instruments[inst])
		}
	}
}

func TestSeededQuantitiesAreDeterministicWithSeed(t *testing.T) {
	a := newTestExchange()
	b := newTestExchange()
	ctx := context.Background()

	a.SeedLiquidity(ctx, "mine")
	b.SeedLiquidity(ctx, "mine")

	ordersA := a.OrdersByOwner(ctx, SyntheticOwner)
	ordersB := b.OrdersByOwner(ctx, SyntheticOwner)
	if len(ordersA) != len(ordersB) {
		t.Fatalf("order counts differ: %d vs %d", len(ordersA), len(ordersB))
	}
	for i := range ordersA {
		if ordersA[i].Quantity != ordersB[i].Quantity || ordersA[i].Price != ordersB[i].Price {
			t.Fatalf("same seed produced different orders at %d: %+v vs %+v", i, ordersA[i], ordersB[i])
		}
	}
}
