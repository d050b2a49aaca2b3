package maker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fakeGateway satisfies MarketData and OrderGateway in memory. Balances()
// consumes the balances slice in order, holding the last entry.
type fakeGateway struct {
	book     Quote
	balances []Balances

	balanceCalls int
	cancels      int
	cancelErr    error
	placed       []Order
	placeErr     error
}

func (f *fakeGateway) OrderBook() (Quote, error) { return f.book, nil }

func (f *fakeGateway) Balances() (Balances, error) {
	i := f.balanceCalls
	f.balanceCalls++
	if i >= len(f.balances) {
		i = len(f.balances) - 1
	}
	return f.balances[i], nil
}

func (f *fakeGateway) CancelAll() error {
	f.cancels++
	return f.cancelErr
}

func (f *fakeGateway) Place(o Order) (string, error) {
	if f.placeErr != nil {
		return "", f.placeErr
	}
	f.placed = append(f.placed, o)
	return fmt.Sprintf("order-%d", len(f.placed)), nil
}

func newTestPlanner(gw *fakeGateway, step string, fee, min int64) *Planner {
	p := NewPlanner(gw, gw, nil, 8, decimal.RequireFromString(step), fee, min)
	p.sleep = func(time.Duration) {}
	return p
}

func TestRebalanceQuotesBothSides(t *testing.T) {
	gw := &fakeGateway{
		book: Quote{Bid: d(t, "0.0045"), Ask: d(t, "0.004")},
		// Balance re-fetched after the sell posts; the buy side must be
		// sized from this refreshed figure.
		balances: []Balances{{Amount: d(t, "50"), Price: d(t, "0.12345678")}},
	}
	p := newTestPlanner(gw, "0.001", 300000, 10000)

	var s Session
	bal := Balances{Amount: d(t, "100"), Price: d(t, "0.12345678")}
	if err := p.Rebalance(&s, gw.book, bal); err != nil {
		t.Fatalf("Rebalance: %v", err)
	}

	if gw.cancels != 1 {
		t.Fatalf("cancels = %d, want 1", gw.cancels)
	}
	if len(gw.placed) != 2 {
		t.Fatalf("placed %d orders, want 2", len(gw.placed))
	}

	sell := gw.placed[0]
	if sell.Side != Sell {
		t.Fatalf("first order side = %s, want sell", sell.Side)
	}
	// floor(0.12345678 / 0.005 * 10^8) - 2*300000 = 2469135600 - 600000
	if sell.Amount != 2468535600 {
		t.Fatalf("sell amount = %d, want 2468535600", sell.Amount)
	}
	if !sell.Price.Equal(d(t, "0.005")) {
		t.Fatalf("sell price = %s, want 0.005", sell.Price)
	}

	buy := gw.placed[1]
	if buy.Side != Buy {
		t.Fatalf("second order side = %s, want buy", buy.Side)
	}
	// Sized from the refreshed 50, not the stale 100.
	if buy.Amount != 50*1e8-600000 {
		t.Fatalf("buy amount = %d, want %d", buy.Amount, int64(50*1e8-600000))
	}
	if !buy.Price.Equal(d(t, "0.0035")) {
		t.Fatalf("buy price = %s, want 0.0035", buy.Price)
	}

	if !s.LastBestAsk.Equal(d(t, "0.005")) || !s.LastBestBid.Equal(d(t, "0.0035")) {
		t.Fatalf("session quotes = %s/%s, want 0.0035/0.005", s.LastBestBid, s.LastBestAsk)
	}
}

func TestRebalanceBelowFloorStillRecordsQuote(t *testing.T) {
	gw := &fakeGateway{
		book:     Quote{Bid: d(t, "0.0045"), Ask: d(t, "0.004")},
		balances: []Balances{{Amount: d(t, "0"), Price: d(t, "0.00001")}},
	}
	p := newTestPlanner(gw, "0.001", 300000, 10000)

	var s Session
	bal := Balances{Amount: d(t, "0"), Price: d(t, "0.00001")}
	if err := p.Rebalance(&s, gw.book, bal); err != nil {
		t.Fatalf("Rebalance: %v", err)
	}

	if len(gw.placed) != 0 {
		t.Fatalf("placed %d orders, want 0", len(gw.placed))
	}
	// No order posted, but the quote targets moved anyway: the next poll
	// compares the book against these.
	if !s.LastBestAsk.Equal(d(t, "0.005")) {
		t.Fatalf("LastBestAsk = %s, want 0.005", s.LastBestAsk)
	}
	if !s.LastBestBid.Equal(d(t, "0.0035")) {
		t.Fatalf("LastBestBid = %s, want 0.0035", s.LastBestBid)
	}
	// Balances were never re-fetched because nothing was sold.
	if gw.balanceCalls != 0 {
		t.Fatalf("balance refetches = %d, want 0", gw.balanceCalls)
	}
}

func TestRebalanceCancelFailureAbortsBothSides(t *testing.T) {
	gw := &fakeGateway{
		book:      Quote{Bid: d(t, "0.0045"), Ask: d(t, "0.004")},
		balances:  []Balances{{Amount: d(t, "100"), Price: d(t, "1")}},
		cancelErr: errors.New("matcher down"),
	}
	p := newTestPlanner(gw, "0.001", 300000, 10000)

	var s Session
	if err := p.Rebalance(&s, gw.book, Balances{Amount: d(t, "100"), Price: d(t, "1")}); err == nil {
		t.Fatal("Rebalance: want error on cancel failure")
	}
	if len(gw.placed) != 0 {
		t.Fatalf("placed %d orders after failed cancel, want 0", len(gw.placed))
	}
	if !s.LastBestAsk.IsZero() || !s.LastBestBid.IsZero() {
		t.Fatalf("session quotes updated after failed cancel: %s/%s", s.LastBestBid, s.LastBestAsk)
	}
}

func TestRebalancePlaceFailurePropagates(t *testing.T) {
	gw := &fakeGateway{
		book:     Quote{Bid: d(t, "0.0045"), Ask: d(t, "0.004")},
		balances: []Balances{{Amount: d(t, "100"), Price: d(t, "1")}},
		placeErr: errors.New("order rejected"),
	}
	p := newTestPlanner(gw, "0.001", 300000, 10000)

	var s Session
	err := p.Rebalance(&s, gw.book, Balances{Amount: d(t, "100"), Price: d(t, "1")})
	if err == nil {
		t.Fatal("Rebalance: want error on rejected order")
	}
	// The sell side had already computed its price before the rejection.
	if !s.LastBestAsk.Equal(d(t, "0.005")) {
		t.Fatalf("LastBestAsk = %s, want 0.005", s.LastBestAsk)
	}
	if !s.LastBestBid.IsZero() {
		t.Fatalf("LastBestBid = %s, want unset after aborted iteration", s.LastBestBid)
	}
}
