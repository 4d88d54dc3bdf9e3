package exchange

import "fmt"

// Side represents the order side: buy or sell.
type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	if s == SideBuy {
		return "buy"
	}
	return "sell"
}

// ParseSide maps the wire form ("buy"/"sell") back to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	default:
		return SideBuy, fmt.Errorf("unknown side %q", s)
	}
}

// Instrument identifies one independent market: a (station, good) pair.
// Each instrument has its own book, supply pressure, and price history.
type Instrument struct {
	StationID string `json:"stationId"`
	GoodID    string `json:"goodId"`
}

// Order is a resting or incoming limit order. ID is allocated by the
// exchange and strictly increases, so a lower ID always means the order
// was created earlier; matching uses that as its tie-breaker.
type Order struct {
	ID         int64
	Owner      string
	Instrument Instrument
	Side       Side
	Price      int64
	Quantity   int64
	Filled     int64
	CreatedAt  int64 // unix milliseconds
}

// Remaining is the unfilled quantity.
func (o Order) Remaining() int64 {
	return o.Quantity - o.Filled
}

// Fill is one execution between a bid and an ask.
type Fill struct {
	Instrument Instrument `json:"instrument"`
	Price      int64      `json:"price"`
	Quantity   int64      `json:"quantity"`
	BidOrderID int64      `json:"bidOrderId"`
	AskOrderID int64      `json:"askOrderId"`
	Timestamp  int64      `json:"timestamp"`
}

// PricePoint is one entry in an instrument's trade history.
type PricePoint struct {
	Price     int64 `json:"price"`
	Quantity  int64 `json:"quantity"`
	Timestamp int64 `json:"timestamp"`
}

// Quote is the station's posted prices for a good: Buy is what the
// station charges a ship buying the good, Sell is what it pays a ship
// selling it.
type Quote struct {
	Buy  int64 `json:"buy"`
	Sell int64 `json:"sell"`
}

// Spread is a read-only view of the top of one book. Nil means that
// side of the book is empty.
type Spread struct {
	Bid    *int64 `json:"bid"`
	Ask    *int64 `json:"ask"`
	Spread *int64 `json:"spread"`
}

// Route is the most profitable destination for hauling a good away
// from a source station. Destination is empty when no route profits.
type Route struct {
	Profit      int64  `json:"profit"`
	Destination string `json:"destination,omitempty"`
}
