package store

import (
	"testing"

	"github.com/gnoobs75/Expedition-sub004/pkg/exchange"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	snap := exchange.Snapshot{
		NextOrderID: 17,
		Supply: []exchange.SupplyEntry{
			{StationID: "mine", GoodID: "ore", Pressure: -4.5},
		},
		Books: []exchange.BookRecord{{
			StationID: "mine",
			GoodID:    "ore",
			Bids: []exchange.OrderRecord{
				{ID: 3, Owner: "alice", Side: "buy", Price: 50, Quantity: 5, Filled: 1, CreatedAt: 1700000000000},
			},
		}},
	}
	if err := s.Save(snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatalf("expected a stored snapshot")
	}
	if loaded.NextOrderID != 17 {
		t.Fatalf("expected order id counter 17, got %d", loaded.NextOrderID)
	}
	if len(loaded.Books) != 1 || len(loaded.Books[0].Bids) != 1 {
		t.Fatalf("unexpected books: %+v", loaded.Books)
	}
	if loaded.Supply[0].Pressure != -4.5 {
		t.Fatalf("expected pressure -4.5, got %v", loaded.Supply[0].Pressure)
	}
}

func TestLoadWithoutSnapshot(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	_, ok, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatalf("expected no snapshot in a fresh store")
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Save(exchange.Snapshot{NextOrderID: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(exchange.Snapshot{NextOrderID: 2}); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("load: ok=%t err=%v", ok, err)
	}
	if loaded.NextOrderID != 2 {
		t.Fatalf("expected latest snapshot, got counter %d", loaded.NextOrderID)
	}
}
