package handlers

import (
	"github.com/gnoobs75/Expedition-sub004/pkg/exchange"
	"github.com/gnoobs75/Expedition-sub004/pkg/feed"
	"github.com/gnoobs75/Expedition-sub004/pkg/obs"
	"github.com/gnoobs75/Expedition-sub004/pkg/store"
)

type Handler struct {
	engine *exchange.Exchange
	store  *store.Store
	feed   *feed.Publisher
	obs    *obs.Client
}

// New wires the HTTP surface to the engine. The store and feed may be
// nil; snapshot endpoints then report unavailable and fills are not
// published.
func New(engine *exchange.Exchange, st *store.Store, pub *feed.Publisher, log *obs.Client) *Handler {
	return &Handler{
		engine: engine,
		store:  st,
		feed:   pub,
		obs:    log,
	}
}
