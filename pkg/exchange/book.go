package exchange

import (
	"sort"
	"sync"
)

// historyCap bounds each instrument's trade history; the oldest points
// are evicted first.
const historyCap = 50

// book is one instrument's resting orders plus its trade history.
// Bids sort by price descending, asks ascending, ties by order ID
// ascending (lower ID = created earlier). Both sides hold only orders
// with remaining quantity; the sort is re-established after every
// insert, cancel, and fill removal.
type book struct {
	mu         sync.Mutex
	instrument Instrument
	bids       []*Order
	asks       []*Order
	history    []PricePoint
}

func newBook(inst Instrument) *book {
	return &book{instrument: inst}
}

// insert adds the order to its side and restores the sort invariant.
// Caller holds b.mu.
func (b *book) insert(o *Order) {
	if o.Side == SideBuy {
		b.bids = append(b.bids, o)
		sortBids(b.bids)
	} else {
		b.asks = append(b.asks, o)
		sortAsks(b.asks)
	}
}

func sortBids(orders []*Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].Price != orders[j].Price {
			return orders[i].Price > orders[j].Price
		}
		return orders[i].ID < orders[j].ID
	})
}

func sortAsks(orders []*Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].Price != orders[j].Price {
			return orders[i].Price < orders[j].Price
		}
		return orders[i].ID < orders[j].ID
	})
}

// remove drops the order with the given ID from whichever side holds
// it. Removing an unknown ID is a no-op. Caller holds b.mu.
func (b *book) remove(orderID int64) bool {
	if removed, rest := removeByID(b.bids, orderID); removed {
		b.bids = rest
		return true
	}
	if removed, rest := removeByID(b.asks, orderID); removed {
		b.asks = rest
		return true
	}
	return false
}

func removeByID(orders []*Order, orderID int64) (bool, []*Order) {
	for i, o := range orders {
		if o.ID == orderID {
			return true, append(orders[:i], orders[i+1:]...)
		}
	}
	return false, orders
}

// match crosses the book while the best bid meets the best ask. The
// fill executes at the limit price of whichever order is older, fills
// min(remaining, remaining), and appends a history point per fill.
// Fully-filled orders leave their side. Caller holds b.mu.
func (b *book) match(now int64) []Fill {
	var fills []Fill
	for len(b.bids) > 0 && len(b.asks) > 0 {
		bid, ask := b.bids[0], b.asks[0]
		if bid.Price < ask.Price {
			break
		}

		// Price-time priority: the older (resting) order's price
		// governs the trade.
		price := bid.Price
		if ask.ID < bid.ID {
			price = ask.Price
		}

		quantity := bid.Remaining()
		if ask.Remaining() < quantity {
			quantity = ask.Remaining()
		}

		bid.Filled += quantity
		ask.Filled += quantity
		fills = append(fills, Fill{
			Instrument: b.instrument,
			Price:      price,
			Quantity:   quantity,
			BidOrderID: bid.ID,
			AskOrderID: ask.ID,
			Timestamp:  now,
		})
		b.appendHistory(PricePoint{Price: price, Quantity: quantity, Timestamp: now})

		if bid.Remaining() == 0 {
			b.bids = b.bids[1:]
		}
		if ask.Remaining() == 0 {
			b.asks = b.asks[1:]
		}
	}
	return fills
}

func (b *book) appendHistory(p PricePoint) {
	b.history = append(b.history, p)
	if len(b.history) > historyCap {
		b.history = b.history[len(b.history)-historyCap:]
	}
}

// spread reads the top of book without mutating it. Caller holds b.mu.
func (b *book) spread() Spread {
	var s Spread
	if len(b.bids) > 0 {
		price := b.bids[0].Price
		s.Bid = &price
	}
	if len(b.asks) > 0 {
		price := b.asks[0].Price
		s.Ask = &price
	}
	if s.Bid != nil && s.Ask != nil {
		gap := *s.Ask - *s.Bid
		s.Spread = &gap
	}
	return s
}

// ordersFor copies the owner's resting orders, bids first. Caller
// holds b.mu.
func (b *book) ordersFor(owner string) []Order {
	var out []Order
	for _, o := range b.bids {
		if o.Owner == owner {
			out = append(out, *o)
		}
	}
	for _, o := range b.asks {
		if o.Owner == owner {
			out = append(out, *o)
		}
	}
	return out
}

// countBySide counts the owner's resting orders on one side. Caller
// holds b.mu.
func (b *book) countBySide(owner string, side Side) int {
	orders := b.bids
	if side == SideSell {
		orders = b.asks
	}
	count := 0
	for _, o := range orders {
		if o.Owner == owner {
			count++
		}
	}
	return count
}

// purgeExhausted drops the owner's orders with no remaining quantity.
// Matching already removes filled orders, so this is a safety net for
// restored or externally aged books. Caller holds b.mu.
func (b *book) purgeExhausted(owner string) {
	b.bids = keepLive(b.bids, owner)
	b.asks = keepLive(b.asks, owner)
}

func keepLive(orders []*Order, owner string) []*Order {
	kept := orders[:0]
	for _, o := range orders {
		if o.Owner == owner && o.Remaining() <= 0 {
			continue
		}
		kept = append(kept, o)
	}
	return kept
}
