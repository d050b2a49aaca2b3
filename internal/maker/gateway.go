package maker

import "github.com/shopspring/decimal"

// Side is the direction of a limit order.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Quote is a best-of-book snapshot, prices in price-asset units.
type Quote struct {
	Bid decimal.Decimal
	Ask decimal.Decimal
}

// Balances is a point-in-time account snapshot, in whole asset units.
type Balances struct {
	Amount decimal.Decimal
	Price  decimal.Decimal
}

// Order is a limit order the planner wants resting on the book. Amount is
// in the amount asset's smallest unit.
type Order struct {
	Side   Side
	Price  decimal.Decimal
	Amount int64
}

// MarketData supplies the order book and account balances for the pair.
type MarketData interface {
	OrderBook() (Quote, error)
	Balances() (Balances, error)
}

// OrderGateway cancels and places orders for the pair. CancelAll is
// eventually consistent on the matcher side; callers pause before relying
// on the freed balance.
type OrderGateway interface {
	CancelAll() error
	Place(Order) (string, error)
}

// Notifier receives best-effort session events. Implementations must not
// block the loop or return errors.
type Notifier interface {
	SessionStarted(startValue decimal.Decimal)
	OrderPlaced(o Order)
}
