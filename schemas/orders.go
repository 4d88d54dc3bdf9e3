package schemas

type PlaceOrderRequest struct {
	StationID string `json:"stationId"`
	GoodID    string `json:"goodId"`
	Side      string `json:"side"` // "buy" or "sell"
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Owner     string `json:"owner"`
}

type OrderFill struct {
	Price      int64 `json:"price"`
	Quantity   int64 `json:"quantity"`
	BidOrderID int64 `json:"bidOrderId"`
	AskOrderID int64 `json:"askOrderId"`
	Timestamp  int64 `json:"timestamp"`
}

type PlaceOrderResponse struct {
	OrderID   int64       `json:"orderId"`
	Remaining int64       `json:"remaining"`
	Fills     []OrderFill `json:"fills"`
}

type CancelOrderRequest struct {
	StationID string `json:"stationId"`
	GoodID    string `json:"goodId"`
	OrderID   int64  `json:"orderId"`
}

type OpenOrder struct {
	OrderID   int64  `json:"orderId"`
	Owner     string `json:"owner"`
	StationID string `json:"stationId"`
	GoodID    string `json:"goodId"`
	Side      string `json:"side"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Filled    int64  `json:"filled"`
	CreatedAt int64  `json:"createdAt"`
}

type OpenOrdersResponse struct {
	Orders []OpenOrder `json:"orders"`
}
