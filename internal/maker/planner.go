package maker

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// The matcher acknowledges cancels and placements before its book reflects
// them, so the planner pauses after each before touching balances again.
const (
	cancelSettle = 2 * time.Second
	orderSettle  = 4 * time.Second
)

// Planner turns a detected market move into replacement orders: it clears
// the pair's resting orders, then quotes a sell one price step above the
// observed best ask and a buy one step below the observed best bid, sized
// from current balances.
type Planner struct {
	market MarketData
	orders OrderGateway
	notify Notifier

	amountDecimals int32
	priceStep      decimal.Decimal
	orderFee       int64
	minAmount      int64

	sleep func(time.Duration)
}

// NewPlanner builds a planner for one pair. notify may be nil.
func NewPlanner(market MarketData, orders OrderGateway, notify Notifier, amountDecimals int32, priceStep decimal.Decimal, orderFee, minAmount int64) *Planner {
	return &Planner{
		market:         market,
		orders:         orders,
		notify:         notify,
		amountDecimals: amountDecimals,
		priceStep:      priceStep,
		orderFee:       orderFee,
		minAmount:      minAmount,
		sleep:          time.Sleep,
	}
}

// Rebalance replaces the resting orders around the observed book. Both
// side prices are recorded on the session whether or not an order is
// actually posted: a side too small for the floor still moves the quote
// target, so the next poll compares the book against what the bot meant to
// quote, not against a stale market price. Any gateway failure aborts the
// remaining steps and is reported to the caller.
func (p *Planner) Rebalance(s *Session, book Quote, bal Balances) error {
	if err := p.orders.CancelAll(); err != nil {
		return fmt.Errorf("cancel open orders: %w", err)
	}
	p.sleep(cancelSettle)

	askPrice := book.Ask.Add(p.priceStep)
	askAmount := bal.Price.Div(askPrice).Shift(p.amountDecimals).Floor().IntPart() - 2*p.orderFee
	log.Info().
		Str("ask_price", askPrice.String()).
		Int64("ask_amount", askAmount).
		Msg("Sell side")
	s.LastBestAsk = askPrice
	if askAmount >= p.minAmount {
		if err := p.place(Order{Side: Sell, Price: askPrice, Amount: askAmount}); err != nil {
			return err
		}
		p.sleep(orderSettle)
		// The sell consumed price-asset balance; the buy side below must
		// be sized from what is actually left.
		fresh, err := p.market.Balances()
		if err != nil {
			return fmt.Errorf("refresh balances: %w", err)
		}
		bal = fresh
	}

	bidPrice := book.Bid.Sub(p.priceStep)
	bidAmount := bal.Amount.Shift(p.amountDecimals).Floor().IntPart() - 2*p.orderFee
	log.Info().
		Str("bid_price", bidPrice.String()).
		Int64("bid_amount", bidAmount).
		Msg("Buy side")
	s.LastBestBid = bidPrice
	if bidAmount >= p.minAmount {
		if err := p.place(Order{Side: Buy, Price: bidPrice, Amount: bidAmount}); err != nil {
			return err
		}
	}
	return nil
}

func (p *Planner) place(o Order) error {
	id, err := p.orders.Place(o)
	if err != nil {
		return fmt.Errorf("place %s order: %w", o.Side, err)
	}
	log.Info().
		Str("order_id", id).
		Str("side", string(o.Side)).
		Str("price", o.Price.String()).
		Int64("amount", o.Amount).
		Msg("Posted order")
	if p.notify != nil {
		p.notify.OrderPlaced(o)
	}
	return nil
}
