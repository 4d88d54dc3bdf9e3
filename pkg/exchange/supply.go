package exchange

import (
	"math"
	"sync"
)

const (
	supplyMax       = 20.0
	supplyDecayRate = 0.92
	supplyPruneAt   = 0.1
	supplyPerUnit   = 0.02
	modifierMin     = 0.6
	modifierMax     = 1.4
)

// supplyLedger tracks decaying supply pressure per instrument.
// Positive pressure means oversupply and pushes prices down; negative
// means shortage and pushes them up. Entries near zero are pruned, so
// a missing entry reads as exactly zero pressure.
type supplyLedger struct {
	mu      sync.Mutex
	entries map[Instrument]float64
}

func newSupplyLedger() *supplyLedger {
	return &supplyLedger{entries: map[Instrument]float64{}}
}

// Record applies one trade's pressure: buying drains supply, selling
// adds to it. The result is clamped to [-supplyMax, supplyMax].
func (l *supplyLedger) Record(inst Instrument, quantity int64, isBuy bool) {
	delta := float64(quantity)
	if isBuy {
		delta = -delta
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[inst] = clampFloat(l.entries[inst]+delta, -supplyMax, supplyMax)
}

// Decay relaxes every entry toward equilibrium and drops entries whose
// magnitude falls under the prune threshold. Run once per supply tick.
func (l *supplyLedger) Decay() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for inst, v := range l.entries {
		v *= supplyDecayRate
		if math.Abs(v) < supplyPruneAt {
			delete(l.entries, inst)
			continue
		}
		l.entries[inst] = v
	}
}

// Modifier converts current pressure into a price multiplier. Each
// unit of net supply moves the price about 2%, capped at ±40%.
func (l *supplyLedger) Modifier(inst Instrument) float64 {
	l.mu.Lock()
	v := l.entries[inst]
	l.mu.Unlock()
	return clampFloat(1-v*supplyPerUnit, modifierMin, modifierMax)
}

func (l *supplyLedger) snapshot() []SupplyEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]SupplyEntry, 0, len(l.entries))
	for inst, v := range l.entries {
		out = append(out, SupplyEntry{StationID: inst.StationID, GoodID: inst.GoodID, Pressure: v})
	}
	return out
}

func (l *supplyLedger) restore(entries []SupplyEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[Instrument]float64, len(entries))
	for _, e := range entries {
		v := clampFloat(e.Pressure, -supplyMax, supplyMax)
		if math.Abs(v) < supplyPruneAt {
			continue
		}
		l.entries[Instrument{StationID: e.StationID, GoodID: e.GoodID}] = v
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
