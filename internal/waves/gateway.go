package waves

import (
	"time"

	"wavesbot/internal/asset"
	"wavesbot/internal/maker"
)

// Gateway adapts the node and matcher clients to the maker's interfaces
// for one pair and account. Raw prices are scaled by the price asset's
// decimals, balances by each leg's own decimals.
type Gateway struct {
	node    *NodeClient
	matcher *MatcherClient
	acc     *Account
	pair    asset.Pair

	fee      int64
	lifetime time.Duration
}

// NewGateway wires the clients to a pair and account.
func NewGateway(node *NodeClient, matcher *MatcherClient, acc *Account, pair asset.Pair, fee int64, lifetime time.Duration) *Gateway {
	return &Gateway{
		node:     node,
		matcher:  matcher,
		acc:      acc,
		pair:     pair,
		fee:      fee,
		lifetime: lifetime,
	}
}

// OrderBook fetches the best-of-book quote in price-asset units.
func (g *Gateway) OrderBook() (maker.Quote, error) {
	bid, ask, err := g.matcher.OrderBook(g.pair)
	if err != nil {
		return maker.Quote{}, err
	}
	return maker.Quote{
		Bid: g.pair.Price.FromUnits(bid),
		Ask: g.pair.Price.FromUnits(ask),
	}, nil
}

// Balances fetches both legs of the pair in whole asset units.
func (g *Gateway) Balances() (maker.Balances, error) {
	addr := g.acc.Address.String()
	amount, err := g.node.Balance(addr, g.pair.Amount.ID)
	if err != nil {
		return maker.Balances{}, err
	}
	price, err := g.node.Balance(addr, g.pair.Price.ID)
	if err != nil {
		return maker.Balances{}, err
	}
	return maker.Balances{
		Amount: g.pair.Amount.FromUnits(amount),
		Price:  g.pair.Price.FromUnits(price),
	}, nil
}

// CancelAll drops the pair's open orders on the matcher.
func (g *Gateway) CancelAll() error {
	return g.matcher.CancelAll(g.acc, g.pair)
}

// Place submits a limit order with the configured fee and lifetime.
func (g *Gateway) Place(o maker.Order) (string, error) {
	priceUnits := g.pair.Price.ToUnits(o.Price)
	return g.matcher.Place(g.acc, g.pair, o.Side, o.Amount, priceUnits, g.fee, g.lifetime)
}
