package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gnoobs75/Expedition-sub004/pkg/handlers"
	"github.com/gnoobs75/Expedition-sub004/pkg/obs"
)

func New(router fiber.Router, handler *handlers.Handler, obs *obs.Client) {
	router.Use(requestIDMiddleware)

	market := router.Group("/market")
	market.Get("/quote/:stationId/:goodId", handler.GetQuote)
	market.Get("/route/:goodId/:stationId", handler.GetRoute)
	market.Get("/spread/:stationId/:goodId", handler.GetSpread)
	market.Get("/history/:stationId/:goodId", handler.GetPriceHistory)
	market.Post("/trade", handler.RecordTrade)

	orders := router.Group("/orders")
	orders.Post("/post", handler.PlaceOrder)
	orders.Post("/cancel", handler.CancelOrder)
	orders.Get("/:ownerId", handler.GetOpenOrders)

	// Liquidity and persistence live under /admin: the game host calls
	// these, not players.
	admin := router.Group("/admin")
	admin.Post("/seed/:stationId", handler.SeedStation)
	admin.Post("/refresh", handler.RefreshLiquidity)
	admin.Post("/snapshot", handler.SaveSnapshot)
	admin.Post("/restore", handler.RestoreSnapshot)
}
