package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/gnoobs75/Expedition-sub004/pkg/catalog"
	"github.com/gnoobs75/Expedition-sub004/pkg/exchange"
	"github.com/gnoobs75/Expedition-sub004/pkg/obs"
)

func newTestHandlerApp() (*fiber.App, *exchange.Exchange) {
	obsClient := obs.New()
	engine := exchange.New(catalog.Default(), obsClient)
	// test without persistence or a fill feed
	h := New(engine, nil, nil, obsClient)

	app := fiber.New()
	app.Get("/market/quote/:stationId/:goodId", h.GetQuote)
	app.Get("/market/spread/:stationId/:goodId", h.GetSpread)
	app.Post("/market/trade", h.RecordTrade)
	app.Post("/orders/post", h.PlaceOrder)
	app.Post("/orders/cancel", h.CancelOrder)
	app.Get("/orders/:ownerId", h.GetOpenOrders)
	return app, engine
}

func TestQuoteEndpoint(t *testing.T) {
	app, _ := newTestHandlerApp()

	// kepler-mining produces ore (base 40): 0.6/0.3 multipliers.
	req := httptest.NewRequest("GET", "/market/quote/kepler-mining/ore", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("failed to call endpoint: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var quote struct {
		Buy  int64 `json:"buy"`
		Sell int64 `json:"sell"`
	}
	if err := json.NewDecoder(res.Body).Decode(&quote); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if quote.Buy != 24 || quote.Sell != 12 {
		t.Fatalf("expected {24 12}, got %+v", quote)
	}
}

func TestPlaceOrderEndpoint(t *testing.T) {
	app, _ := newTestHandlerApp()

	body := `{"stationId":"kepler-mining","goodId":"ore","side":"buy","price":30,"quantity":5,"owner":"alice"}`
	req := httptest.NewRequest("POST", "/orders/post", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("failed to call endpoint: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var response struct {
		OrderID   int64 `json:"orderId"`
		Remaining int64 `json:"remaining"`
	}
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.OrderID == 0 {
		t.Fatalf("expected allocated order id")
	}
	if response.Remaining != 5 {
		t.Fatalf("expected 5 remaining on a fresh post, got %d", response.Remaining)
	}
}

func TestPlaceOrderEndpointRejectsInvalidBody(t *testing.T) {
	app, _ := newTestHandlerApp()

	req := httptest.NewRequest("POST", "/orders/post", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("failed to call endpoint: %v", err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestPlaceOrderEndpointRejectsBadParams(t *testing.T) {
	app, _ := newTestHandlerApp()

	cases := []string{
		`{"stationId":"kepler-mining","goodId":"ore","side":"buy","price":0,"quantity":5,"owner":"alice"}`,
		`{"stationId":"kepler-mining","goodId":"ore","side":"hold","price":10,"quantity":5,"owner":"alice"}`,
		`{"stationId":"kepler-mining","goodId":"ore","side":"buy","price":10,"quantity":5}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest("POST", "/orders/post", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("failed to call endpoint: %v", err)
		}
		if res.StatusCode != 400 {
			t.Fatalf("expected 400 for %s, got %d", body, res.StatusCode)
		}
	}
}

func TestCancelEndpointUnknownOrderSucceeds(t *testing.T) {
	app, _ := newTestHandlerApp()

	body := `{"stationId":"kepler-mining","goodId":"ore","orderId":999}`
	req := httptest.NewRequest("POST", "/orders/cancel", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("failed to call endpoint: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 for no-op cancel, got %d", res.StatusCode)
	}
}

func TestOpenOrdersEndpoint(t *testing.T) {
	app, _ := newTestHandlerApp()

	body := `{"stationId":"kepler-mining","goodId":"ore","side":"sell","price":40,"quantity":2,"owner":"bob"}`
	req := httptest.NewRequest("POST", "/orders/post", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("failed to post order: %v", err)
	}

	res, err := app.Test(httptest.NewRequest("GET", "/orders/bob", nil))
	if err != nil {
		t.Fatalf("failed to call endpoint: %v", err)
	}
	var response struct {
		Orders []struct {
			Owner string `json:"owner"`
			Side  string `json:"side"`
			Price int64  `json:"price"`
		} `json:"orders"`
	}
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Orders) != 1 {
		t.Fatalf("expected 1 open order, got %d", len(response.Orders))
	}
	if response.Orders[0].Side != "sell" || response.Orders[0].Price != 40 {
		t.Fatalf("unexpected order: %+v", response.Orders[0])
	}
}

func TestRecordTradeEndpointMovesQuote(t *testing.T) {
	app, engine := newTestHandlerApp()

	body := `{"goodId":"ore","stationId":"kepler-mining","quantity":10,"isBuy":true}`
	req := httptest.NewRequest("POST", "/market/trade", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("failed to call endpoint: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	// Shortage of 10 lifts the modifier to 1.2: buy 40*0.6*1.2 = 28.
	if q := engine.Quote("ore", "kepler-mining"); q.Buy != 28 {
		t.Fatalf("expected buy 28 after recorded trade, got %d", q.Buy)
	}
}
