package exchange

import "sort"

// Snapshot is the fully value-typed persisted form of the market:
// supply entries, every book's resting orders, every instrument's
// trade history, and the order id counter. It shares no references
// with live engine state.
type Snapshot struct {
	Supply      []SupplyEntry   `json:"supply"`
	Books       []BookRecord    `json:"books"`
	History     []HistoryRecord `json:"history"`
	NextOrderID int64           `json:"nextOrderId"`
}

type SupplyEntry struct {
	StationID string  `json:"stationId"`
	GoodID    string  `json:"goodId"`
	Pressure  float64 `json:"pressure"`
}

type BookRecord struct {
	StationID string        `json:"stationId"`
	GoodID    string        `json:"goodId"`
	Bids      []OrderRecord `json:"bids"`
	Asks      []OrderRecord `json:"asks"`
}

type OrderRecord struct {
	ID        int64  `json:"id"`
	Owner     string `json:"owner"`
	Side      string `json:"side"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Filled    int64  `json:"filled"`
	CreatedAt int64  `json:"createdAt"`
}

type HistoryRecord struct {
	StationID string       `json:"stationId"`
	GoodID    string       `json:"goodId"`
	Points    []PricePoint `json:"points"`
}

// Snapshot copies the entire market under the engine's write lock, so
// no order placement or match can tear the result. Output ordering is
// deterministic (instruments sorted by station, then good).
func (e *Exchange) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Supply:      e.supply.snapshot(),
		NextOrderID: e.nextID.Load(),
	}
	sort.Slice(snap.Supply, func(i, j int) bool {
		if snap.Supply[i].StationID != snap.Supply[j].StationID {
			return snap.Supply[i].StationID < snap.Supply[j].StationID
		}
		return snap.Supply[i].GoodID < snap.Supply[j].GoodID
	})

	instruments := make([]Instrument, 0, len(e.books))
	for inst := range e.books {
		instruments = append(instruments, inst)
	}
	sort.Slice(instruments, func(i, j int) bool {
		if instruments[i].StationID != instruments[j].StationID {
			return instruments[i].StationID < instruments[j].StationID
		}
		return instruments[i].GoodID < instruments[j].GoodID
	})

	for _, inst := range instruments {
		b := e.books[inst]
		b.mu.Lock()
		record := BookRecord{
			StationID: inst.StationID,
			GoodID:    inst.GoodID,
			Bids:      orderRecords(b.bids),
			Asks:      orderRecords(b.asks),
		}
		if len(b.history) > 0 {
			points := make([]PricePoint, len(b.history))
			copy(points, b.history)
			snap.History = append(snap.History, HistoryRecord{
				StationID: inst.StationID,
				GoodID:    inst.GoodID,
				Points:    points,
			})
		}
		b.mu.Unlock()

		if len(record.Bids) > 0 || len(record.Asks) > 0 {
			snap.Books = append(snap.Books, record)
		}
	}
	return snap
}

func orderRecords(orders []*Order) []OrderRecord {
	out := make([]OrderRecord, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderRecord{
			ID:        o.ID,
			Owner:     o.Owner,
			Side:      o.Side.String(),
			Price:     o.Price,
			Quantity:  o.Quantity,
			Filled:    o.Filled,
			CreatedAt: o.CreatedAt,
		})
	}
	return out
}

// Restore replaces the whole market with the snapshot's contents. A
// snapshot that fails validation leaves the engine empty but valid —
// restore never applies partially.
func (e *Exchange) Restore(snap Snapshot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	books, err := buildBooks(snap)
	if err != nil {
		e.books = map[Instrument]*book{}
		e.supply.restore(nil)
		e.nextID.Store(0)
		return err
	}

	e.books = books
	e.supply.restore(snap.Supply)
	e.nextID.Store(snap.NextOrderID)
	return nil
}

func buildBooks(snap Snapshot) (map[Instrument]*book, error) {
	if snap.NextOrderID < 0 {
		// A negative counter would hand out non-positive order ids.
		return nil, ErrMalformedSnapshot
	}
	books := map[Instrument]*book{}
	bookAt := func(inst Instrument) *book {
		b, ok := books[inst]
		if !ok {
			b = newBook(inst)
			books[inst] = b
		}
		return b
	}

	for _, record := range snap.Books {
		inst := Instrument{StationID: record.StationID, GoodID: record.GoodID}
		b := bookAt(inst)
		for _, rec := range record.Bids {
			o, err := orderFromRecord(rec, inst, SideBuy, snap.NextOrderID)
			if err != nil {
				return nil, err
			}
			b.bids = append(b.bids, o)
		}
		for _, rec := range record.Asks {
			o, err := orderFromRecord(rec, inst, SideSell, snap.NextOrderID)
			if err != nil {
				return nil, err
			}
			b.asks = append(b.asks, o)
		}
		sortBids(b.bids)
		sortAsks(b.asks)
	}

	for _, record := range snap.History {
		inst := Instrument{StationID: record.StationID, GoodID: record.GoodID}
		if len(record.Points) > historyCap {
			return nil, ErrMalformedSnapshot
		}
		b := bookAt(inst)
		b.history = append(b.history, record.Points...)
	}
	return books, nil
}

func orderFromRecord(rec OrderRecord, inst Instrument, want Side, maxID int64) (*Order, error) {
	side, err := ParseSide(rec.Side)
	if err != nil || side != want {
		return nil, ErrMalformedSnapshot
	}
	if rec.Price <= 0 || rec.Quantity <= 0 {
		return nil, ErrMalformedSnapshot
	}
	if rec.Filled < 0 || rec.Filled >= rec.Quantity {
		// Books hold only non-fully-filled orders.
		return nil, ErrMalformedSnapshot
	}
	if rec.ID <= 0 || rec.ID > maxID {
		return nil, ErrMalformedSnapshot
	}
	return &Order{
		ID:         rec.ID,
		Owner:      rec.Owner,
		Instrument: inst,
		Side:       side,
		Price:      rec.Price,
		Quantity:   rec.Quantity,
		Filled:     rec.Filled,
		CreatedAt:  rec.CreatedAt,
	}, nil
}
