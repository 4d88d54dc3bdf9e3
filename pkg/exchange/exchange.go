// Package exchange implements the station commodity market: supply
// pressure pricing, per-instrument limit order books with price-time
// priority matching, synthetic liquidity seeding, and snapshot
// save/restore of the whole market state.
package exchange

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gnoobs75/Expedition-sub004/pkg/catalog"
	"github.com/gnoobs75/Expedition-sub004/pkg/obs"
)

// Exchange owns every book, ledger, and history in the market. All
// reads hand out copies; nothing external can mutate engine state
// outside these methods. Mutations hold e.mu.RLock for their full
// duration, so writers on different instruments run in parallel while
// Snapshot's write lock excludes every in-flight mutation.
type Exchange struct {
	catalog *catalog.Catalog
	obs     *obs.Client
	now     func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	nextID atomic.Int64

	mu     sync.RWMutex
	books  map[Instrument]*book
	supply *supplyLedger
}

// New builds an exchange on wall-clock time and a time-seeded PRNG.
func New(cat *catalog.Catalog, log *obs.Client) *Exchange {
	return NewDeterministic(cat, log, time.Now, time.Now().UnixNano())
}

// NewDeterministic pins the clock and the PRNG seed. Tests use this to
// control matching tie-breaks and seeded order quantities.
func NewDeterministic(cat *catalog.Catalog, log *obs.Client, now func() time.Time, seed int64) *Exchange {
	return &Exchange{
		catalog: cat,
		obs:     log,
		now:     now,
		rng:     rand.New(rand.NewSource(seed)),
		books:   map[Instrument]*book{},
		supply:  newSupplyLedger(),
	}
}

func (e *Exchange) nowMillis() int64 {
	return e.now().UnixMilli()
}

// bookFor returns the instrument's book, creating it on first touch.
func (e *Exchange) bookFor(inst Instrument) *book {
	e.mu.RLock()
	b, ok := e.books[inst]
	e.mu.RUnlock()
	if ok {
		return b
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if b, ok := e.books[inst]; ok {
		return b
	}
	b = newBook(inst)
	e.books[inst] = b
	return b
}

// lockedBook returns the instrument's book with e.mu.RLock held,
// creating the book first if needed. Mutating under that lock keeps
// the order id counter and the book in step with Snapshot, which takes
// the write lock. The caller releases e.mu.RUnlock when done.
func (e *Exchange) lockedBook(inst Instrument) *book {
	for {
		e.mu.RLock()
		if b, ok := e.books[inst]; ok {
			return b
		}
		e.mu.RUnlock()

		e.mu.Lock()
		if _, ok := e.books[inst]; !ok {
			e.books[inst] = newBook(inst)
		}
		e.mu.Unlock()
	}
}

// PlaceOrder validates, rests, and opportunistically matches a limit
// order, returning the order as placed plus any fills it produced.
// Affordability and cargo space are the caller's problem; the engine
// rejects only non-positive price or quantity.
func (e *Exchange) PlaceOrder(ctx context.Context, side Side, inst Instrument, price, quantity int64, owner string) (Order, []Fill, error) {
	if price <= 0 || quantity <= 0 {
		return Order{}, nil, ErrInvalidOrderParams
	}

	b := e.lockedBook(inst)
	defer e.mu.RUnlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	o := &Order{
		ID:         e.nextID.Add(1),
		Owner:      owner,
		Instrument: inst,
		Side:       side,
		Price:      price,
		Quantity:   quantity,
		CreatedAt:  e.nowMillis(),
	}
	b.insert(o)

	fills := b.match(e.nowMillis())
	e.obs.LogInfo(ctx, "exchange.place: station=%s good=%s side=%s price=%d qty=%d owner=%s fills=%d",
		inst.StationID, inst.GoodID, side, price, quantity, owner, len(fills))

	return *o, fills, nil
}

// CancelOrder removes the order from the instrument's book if it is
// still resting. Cancelling an unknown ID is a no-op, not an error.
func (e *Exchange) CancelOrder(ctx context.Context, inst Instrument, orderID int64) {
	e.mu.RLock()
	b, ok := e.books[inst]
	if !ok {
		e.mu.RUnlock()
		return
	}

	b.mu.Lock()
	removed := b.remove(orderID)
	b.mu.Unlock()
	e.mu.RUnlock()

	e.obs.LogInfo(ctx, "exchange.cancel: station=%s good=%s order_id=%d removed=%t",
		inst.StationID, inst.GoodID, orderID, removed)
}

// Match crosses the instrument's book until the spread no longer
// crosses, returning the fills produced. Placement already matches
// opportunistically, so this mainly serves replays and maintenance.
func (e *Exchange) Match(ctx context.Context, inst Instrument) []Fill {
	e.mu.RLock()
	b, ok := e.books[inst]
	if !ok {
		e.mu.RUnlock()
		return nil
	}

	b.mu.Lock()
	fills := b.match(e.nowMillis())
	b.mu.Unlock()
	e.mu.RUnlock()

	if len(fills) > 0 {
		e.obs.LogInfo(ctx, "exchange.match: station=%s good=%s fills=%d", inst.StationID, inst.GoodID, len(fills))
	}
	return fills
}

// Spread reports the top of the instrument's book.
func (e *Exchange) Spread(inst Instrument) Spread {
	e.mu.RLock()
	b, ok := e.books[inst]
	e.mu.RUnlock()
	if !ok {
		return Spread{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.spread()
}

// PriceHistory returns a copy of the instrument's recent fills, oldest
// first, at most historyCap points.
func (e *Exchange) PriceHistory(inst Instrument) []PricePoint {
	e.mu.RLock()
	b, ok := e.books[inst]
	e.mu.RUnlock()
	if !ok {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]PricePoint, len(b.history))
	copy(out, b.history)
	return out
}

// OrdersByOwner collects the owner's open orders across every
// instrument, sorted by order ID.
func (e *Exchange) OrdersByOwner(ctx context.Context, owner string) []Order {
	e.mu.RLock()
	books := make([]*book, 0, len(e.books))
	for _, b := range e.books {
		books = append(books, b)
	}
	e.mu.RUnlock()

	var out []Order
	for _, b := range books {
		b.mu.Lock()
		out = append(out, b.ordersFor(owner)...)
		b.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	e.obs.LogInfo(ctx, "exchange.orders.query: owner=%s count=%d", owner, len(out))
	return out
}

// RecordTrade feeds one completed station trade into the supply
// ledger: a buy drains local supply, a sell adds to it. The next quote
// for the instrument reflects the shift.
func (e *Exchange) RecordTrade(goodID, stationID string, quantity int64, isBuy bool) {
	e.supply.Record(Instrument{StationID: stationID, GoodID: goodID}, quantity, isBuy)
}

// DecaySupply relaxes all supply pressure toward equilibrium. The host
// calls this on its supply tick, roughly every 30 seconds.
func (e *Exchange) DecaySupply() {
	e.supply.Decay()
}

// randQuantity draws a synthetic order quantity in [lo, hi].
func (e *Exchange) randQuantity(lo, hi int64) int64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return lo + e.rng.Int63n(hi-lo+1)
}
