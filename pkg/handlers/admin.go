package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) SeedStation(c *fiber.Ctx) error {
	stationID := c.Params("stationId")
	if stationID == "" {
		return badRequest(c, errors.New("stationId is required"))
	}
	ctx := c.UserContext()

	h.engine.SeedLiquidity(ctx, stationID)
	h.obs.LogInfo(ctx, "admin.seed: station=%s", stationID)
	return success(c)
}

func (h *Handler) RefreshLiquidity(c *fiber.Ctx) error {
	ctx := c.UserContext()
	h.engine.RefreshLiquidity(ctx)
	h.obs.LogInfo(ctx, "admin.refresh: done")
	return success(c)
}

// SaveSnapshot persists the current market to the store.
func (h *Handler) SaveSnapshot(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if h.store == nil {
		return temporaryUnavailable(c, errors.New("snapshot store not configured"))
	}

	snap := h.engine.Snapshot()
	if err := h.store.Save(snap); err != nil {
		h.obs.LogAlert(ctx, "admin.snapshot: save failed: %v", err)
		return internalServerError(c)
	}
	h.obs.LogNotice(ctx, "admin.snapshot: saved books=%d history=%d next_order_id=%d",
		len(snap.Books), len(snap.History), snap.NextOrderID)
	return success(c)
}

// RestoreSnapshot replaces the live market with the stored snapshot.
// A malformed or missing blob leaves the engine empty but valid.
func (h *Handler) RestoreSnapshot(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if h.store == nil {
		return temporaryUnavailable(c, errors.New("snapshot store not configured"))
	}

	snap, ok, err := h.store.Load()
	if err != nil {
		h.obs.LogAlert(ctx, "admin.restore: load failed: %v", err)
		return internalServerError(c)
	}
	if !ok {
		return notFound(c, errors.New("no snapshot saved"))
	}

	if err := h.engine.Restore(snap); err != nil {
		h.obs.LogAlert(ctx, "admin.restore: snapshot rejected, market reset: %v", err)
		return badRequest(c, err)
	}
	h.obs.LogNotice(ctx, "admin.restore: restored books=%d next_order_id=%d", len(snap.Books), snap.NextOrderID)
	return success(c)
}
