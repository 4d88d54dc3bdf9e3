package schemas

// QuoteResponse mirrors exchange.Quote on the wire.
type QuoteResponse struct {
	Buy  int64 `json:"buy"`
	Sell int64 `json:"sell"`
}

type RouteResponse struct {
	Profit      int64  `json:"profit"`
	Destination string `json:"destination,omitempty"`
}

type RecordTradeRequest struct {
	GoodID    string `json:"goodId"`
	StationID string `json:"stationId"`
	Quantity  int64  `json:"quantity"`
	IsBuy     bool   `json:"isBuy"`
}

type SpreadResponse struct {
	Bid    *int64 `json:"bid"`
	Ask    *int64 `json:"ask"`
	Spread *int64 `json:"spread"`
}

type PricePoint struct {
	Price     int64 `json:"price"`
	Quantity  int64 `json:"quantity"`
	Timestamp int64 `json:"timestamp"`
}

type PriceHistoryResponse struct {
	Points []PricePoint `json:"points"`
}
