package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gnoobs75/Expedition-sub004/pkg/exchange"
	"github.com/gnoobs75/Expedition-sub004/schemas"
)

func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	var req schemas.PlaceOrderRequest
	ctx := c.UserContext()

	if err := c.BodyParser(&req); err != nil {
		h.obs.LogErr(ctx, "order.place: invalid request body")
		return badRequest(c, errors.New("invalid request body"))
	}
	if req.Owner == "" {
		h.obs.LogErr(ctx, "order.place: owner missing")
		return badRequest(c, errors.New("owner is required"))
	}
	if req.StationID == "" || req.GoodID == "" {
		h.obs.LogErr(ctx, "order.place: instrument missing owner=%s", req.Owner)
		return badRequest(c, errors.New("stationId and goodId are required"))
	}
	side, err := exchange.ParseSide(req.Side)
	if err != nil {
		h.obs.LogErr(ctx, "order.place: bad side %q owner=%s", req.Side, req.Owner)
		return badRequest(c, err)
	}

	inst := exchange.Instrument{StationID: req.StationID, GoodID: req.GoodID}
	order, fills, err := h.engine.PlaceOrder(ctx, side, inst, req.Price, req.Quantity, req.Owner)
	if errors.Is(err, exchange.ErrInvalidOrderParams) {
		h.obs.LogErr(ctx, "order.place: invalid params owner=%s price=%d qty=%d", req.Owner, req.Price, req.Quantity)
		return badRequest(c, err)
	}
	if err != nil {
		h.obs.LogErr(ctx, "order.place failed: owner=%s err=%v", req.Owner, err)
		return internalServerError(c)
	}

	h.feed.PublishFills(ctx, fills)

	resp := schemas.PlaceOrderResponse{
		OrderID:   order.ID,
		Remaining: order.Remaining(),
		Fills:     make([]schemas.OrderFill, 0, len(fills)),
	}
	for _, fill := range fills {
		resp.Fills = append(resp.Fills, schemas.OrderFill{
			Price:      fill.Price,
			Quantity:   fill.Quantity,
			BidOrderID: fill.BidOrderID,
			AskOrderID: fill.AskOrderID,
			Timestamp:  fill.Timestamp,
		})
	}
	return jsonResponse(c, fiber.StatusOK, resp)
}

func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	var req schemas.CancelOrderRequest
	ctx := c.UserContext()

	if err := c.BodyParser(&req); err != nil {
		h.obs.LogErr(ctx, "order.cancel: invalid request body")
		return badRequest(c, errors.New("invalid request body"))
	}
	if req.StationID == "" || req.GoodID == "" {
		return badRequest(c, errors.New("stationId and goodId are required"))
	}

	// Cancelling an unknown id is a no-op by design, so this always
	// succeeds once the request parses.
	inst := exchange.Instrument{StationID: req.StationID, GoodID: req.GoodID}
	h.engine.CancelOrder(ctx, inst, req.OrderID)
	return success(c)
}

func (h *Handler) GetOpenOrders(c *fiber.Ctx) error {
	owner := c.Params("ownerId")
	if owner == "" {
		h.obs.LogErr(c.UserContext(), "orders.query: missing ownerId")
		return badRequest(c, errors.New("ownerId is required"))
	}
	ctx := c.UserContext()

	open := h.engine.OrdersByOwner(ctx, owner)
	orders := make([]schemas.OpenOrder, 0, len(open))
	for _, o := range open {
		orders = append(orders, schemas.OpenOrder{
			OrderID:   o.ID,
			Owner:     o.Owner,
			StationID: o.Instrument.StationID,
			GoodID:    o.Instrument.GoodID,
			Side:      o.Side.String(),
			Price:     o.Price,
			Quantity:  o.Quantity,
			Filled:    o.Filled,
			CreatedAt: o.CreatedAt,
		})
	}
	return jsonResponse(c, fiber.StatusOK, schemas.OpenOrdersResponse{Orders: orders})
}
