package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gnoobs75/Expedition-sub004/pkg/exchange"
	"github.com/gnoobs75/Expedition-sub004/schemas"
)

func (h *Handler) GetQuote(c *fiber.Ctx) error {
	stationID, goodID := c.Params("stationId"), c.Params("goodId")
	if stationID == "" || goodID == "" {
		return badRequest(c, errors.New("stationId and goodId are required"))
	}

	quote := h.engine.Quote(goodID, stationID)
	return jsonResponse(c, fiber.StatusOK, schemas.QuoteResponse{Buy: quote.Buy, Sell: quote.Sell})
}

func (h *Handler) GetRoute(c *fiber.Ctx) error {
	goodID, stationID := c.Params("goodId"), c.Params("stationId")
	if goodID == "" || stationID == "" {
		return badRequest(c, errors.New("goodId and stationId are required"))
	}

	route := h.engine.BestRoute(goodID, stationID)
	return jsonResponse(c, fiber.StatusOK, schemas.RouteResponse{
		Profit:      route.Profit,
		Destination: route.Destination,
	})
}

func (h *Handler) RecordTrade(c *fiber.Ctx) error {
	var req schemas.RecordTradeRequest
	ctx := c.UserContext()

	if err := c.BodyParser(&req); err != nil {
		h.obs.LogErr(ctx, "market.trade: invalid request body")
		return badRequest(c, errors.New("invalid request body"))
	}
	if req.GoodID == "" || req.StationID == "" {
		return badRequest(c, errors.New("goodId and stationId are required"))
	}
	if req.Quantity <= 0 {
		h.obs.LogErr(ctx, "market.trade: invalid quantity %d", req.Quantity)
		return badRequest(c, errors.New("quantity must be greater than 0"))
	}

	h.engine.RecordTrade(req.GoodID, req.StationID, req.Quantity, req.IsBuy)
	h.obs.LogInfo(ctx, "market.trade: station=%s good=%s qty=%d is_buy=%t",
		req.StationID, req.GoodID, req.Quantity, req.IsBuy)
	return success(c)
}

func (h *Handler) GetSpread(c *fiber.Ctx) error {
	stationID, goodID := c.Params("stationId"), c.Params("goodId")
	if stationID == "" || goodID == "" {
		return badRequest(c, errors.New("stationId and goodId are required"))
	}

	spread := h.engine.Spread(exchange.Instrument{StationID: stationID, GoodID: goodID})
	return jsonResponse(c, fiber.StatusOK, schemas.SpreadResponse{
		Bid:    spread.Bid,
		Ask:    spread.Ask,
		Spread: spread.Spread,
	})
}

func (h *Handler) GetPriceHistory(c *fiber.Ctx) error {
	stationID, goodID := c.Params("stationId"), c.Params("goodId")
	if stationID == "" || goodID == "" {
		return badRequest(c, errors.New("stationId and goodId are required"))
	}

	history := h.engine.PriceHistory(exchange.Instrument{StationID: stationID, GoodID: goodID})
	points := make([]schemas.PricePoint, 0, len(history))
	for _, p := range history {
		points = append(points, schemas.PricePoint{Price: p.Price, Quantity: p.Quantity, Timestamp: p.Timestamp})
	}
	return jsonResponse(c, fiber.StatusOK, schemas.PriceHistoryResponse{Points: points})
}
