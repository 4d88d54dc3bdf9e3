package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/gnoobs75/Expedition-sub004/pkg/api"
	"github.com/gnoobs75/Expedition-sub004/pkg/catalog"
	"github.com/gnoobs75/Expedition-sub004/pkg/exchange"
	"github.com/gnoobs75/Expedition-sub004/pkg/feed"
	"github.com/gnoobs75/Expedition-sub004/pkg/handlers"
	"github.com/gnoobs75/Expedition-sub004/pkg/obs"
	"github.com/gnoobs75/Expedition-sub004/pkg/store"
)

func main() {
	port := flag.Int("port", 0, "port for the HTTP server")
	flag.IntVar(port, "p", 0, "shorthand for --port")
	dataDir := flag.String("data-dir", "", "directory for persisted snapshots (empty disables persistence)")
	decayEvery := flag.Duration("decay-interval", 30*time.Second, "supply pressure decay cadence")
	refreshEvery := flag.Duration("liquidity-interval", 60*time.Second, "NPC liquidity refresh cadence")
	snapshotEvery := flag.Duration("snapshot-interval", 2*time.Minute, "snapshot persistence cadence")
	flag.Parse()
	if *port == 0 {
		panic("missing required --port (or -p)")
	}

	// .env is optional; flags stay authoritative for everything but
	// the Kafka feed, which has no flag equivalent.
	_ = godotenv.Load()

	obsClient := obs.New()
	ctx, cancel := context.WithCancel(context.Background())

	engine := exchange.New(catalog.Default(), obsClient)

	var snapStore *store.Store
	if *dataDir != "" {
		var err error
		snapStore, err = store.Open(*dataDir)
		if err != nil {
			panic(fmt.Sprintf("opening snapshot store: %v", err))
		}
		defer snapStore.Close()

		snap, ok, err := snapStore.Load()
		switch {
		case err != nil:
			obsClient.LogAlert(ctx, "stored snapshot unreadable, starting fresh: %v", err)
		case ok:
			if err := engine.Restore(snap); err != nil {
				obsClient.LogAlert(ctx, "stored snapshot rejected, starting fresh: %v", err)
			} else {
				obsClient.LogNotice(ctx, "market restored: books=%d next_order_id=%d", len(snap.Books), snap.NextOrderID)
			}
		}
	}

	var publisher *feed.Publisher
	if brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); brokers != "" {
		topic := os.Getenv("KAFKA_FILLS_TOPIC")
		if topic == "" {
			topic = "market.fills"
		}
		publisher = feed.NewPublisher(strings.Split(brokers, ","), topic, obsClient)
		defer publisher.Close()
		obsClient.LogNotice(ctx, "fill feed enabled: brokers=%s topic=%s", brokers, topic)
	}

	// Seed every station once so the market is live before the first
	// refresh tick.
	engine.RefreshLiquidity(ctx)

	go runTickers(ctx, engine, snapStore, obsClient, *decayEvery, *refreshEvery, *snapshotEvery)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(code).SendString(err.Error())
		},
	})
	app.Use(cors.New())

	handler := handlers.New(engine, snapStore, publisher, obsClient)

	var router fiber.Router = app
	api.New(router, handler, obsClient)

	addr := fmt.Sprintf(":%d", *port)
	obsClient.LogNotice(ctx, "exchange server starting on %s", addr)

	sigterm := make(chan os.Signal, 1)
	var wg sync.WaitGroup
	signal.Notify(sigterm, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigterm
		obsClient.LogNotice(ctx, "received shutdown signal")
		// Register the shutdown work before cancel unblocks main, so
		// wg.Wait cannot pass early and skip the final snapshot.
		wg.Add(1)
		cancel()

		go func() {
			defer wg.Done()
			if snapStore != nil {
				if err := snapStore.Save(engine.Snapshot()); err != nil {
					obsClient.LogAlert(ctx, "final snapshot failed: %v", err)
				}
			}
			if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
				obsClient.LogAlert(ctx, "error shutting down gracefully: %v", err)
			}
		}()
	}()

	go func() {
		if err := app.Listen(addr); err != nil {
			obsClient.LogAlert(ctx, "error starting server: %v", err)
		}
	}()

	<-ctx.Done()
	wg.Wait()

	obsClient.LogNotice(ctx, "server shut down")
}

// runTickers drives the periodic market jobs: supply decay, NPC
// liquidity refresh, and snapshot persistence.
func runTickers(ctx context.Context, engine *exchange.Exchange, snapStore *store.Store, obsClient *obs.Client, decayEvery, refreshEvery, snapshotEvery time.Duration) {
	decay := time.NewTicker(decayEvery)
	refresh := time.NewTicker(refreshEvery)
	snapshot := time.NewTicker(snapshotEvery)
	defer decay.Stop()
	defer refresh.Stop()
	defer snapshot.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-decay.C:
			engine.DecaySupply()
		case <-refresh.C:
			engine.RefreshLiquidity(ctx)
		case <-snapshot.C:
			if snapStore == nil {
				continue
			}
			if err := snapStore.Save(engine.Snapshot()); err != nil {
				obsClient.LogAlert(ctx, "periodic snapshot failed: %v", err)
			}
		}
	}
}
