// Package maker implements the market-making loop: session state, the
// portfolio valuation, change detection against the last acted-upon
// prices, and the order planner that re-quotes both sides of the book.
package maker

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const separator = "---------------------------------------------------------------"

// Session is the mutable state of one continuous run. LastBestBid and
// LastBestAsk track the prices the bot is quoting at, not the last
// observed market prices: they change only when the planner computes a
// fresh side price. Nothing is persisted; a restart fixes a new
// StartValue baseline, so gain figures are not comparable across runs.
type Session struct {
	LastBestBid decimal.Decimal
	LastBestAsk decimal.Decimal
	StartValue  decimal.Decimal
	StartedAt   time.Time
}

// Loop drives one pair on a fixed cadence: poll balances and the book,
// narrate value and gain against the session baseline, and hand detected
// moves to the planner. Strictly sequential, one iteration at a time.
type Loop struct {
	market  MarketData
	planner *Planner
	notify  Notifier

	interval time.Duration

	session Session
	sleep   func(time.Duration)
}

// NewLoop builds the polling loop. notify may be nil.
func NewLoop(market MarketData, planner *Planner, notify Notifier, interval time.Duration) *Loop {
	return &Loop{
		market:   market,
		planner:  planner,
		notify:   notify,
		interval: interval,
		sleep:    time.Sleep,
	}
}

// Run establishes the session baseline and polls until stop closes. Only
// baseline establishment can fail; once polling starts, iteration errors
// are logged and the loop carries on at the next tick.
func (l *Loop) Run(stop <-chan struct{}) error {
	if err := l.start(); err != nil {
		return err
	}
	for {
		select {
		case <-stop:
			return nil
		default:
		}
		l.poll()
		log.Info().Msg(separator)
		l.sleep(l.interval)
	}
}

// start fetches starting balances and book and fixes the value baseline.
func (l *Loop) start() error {
	bal, err := l.market.Balances()
	if err != nil {
		return fmt.Errorf("starting balances: %w", err)
	}
	book, err := l.market.OrderBook()
	if err != nil {
		return fmt.Errorf("starting order book: %w", err)
	}
	start, err := Value(bal.Amount, bal.Price, book.Bid)
	if err != nil {
		return fmt.Errorf("starting valuation: %w", err)
	}
	l.session = Session{
		LastBestBid: book.Bid,
		LastBestAsk: book.Ask,
		StartValue:  start,
		StartedAt:   time.Now().UTC(),
	}

	log.Info().
		Str("best_bid", book.Bid.String()).
		Str("best_ask", book.Ask.String()).
		Msg("Starting book")
	log.Info().
		Str("amount_balance", bal.Amount.String()).
		Str("price_balance", bal.Price.String()).
		Str("value", start.String()).
		Msg("Starting value")
	log.Info().Msg(separator)

	if l.notify != nil {
		l.notify.SessionStarted(start)
	}
	return nil
}

// poll runs one iteration. Gateway and valuation failures skip the rest of
// the iteration; the process stays up.
func (l *Loop) poll() {
	bal, err := l.market.Balances()
	if err != nil {
		log.Error().Err(err).Msg("Balance fetch failed, skipping iteration")
		return
	}
	book, err := l.market.OrderBook()
	if err != nil {
		log.Error().Err(err).Msg("Order book fetch failed, skipping iteration")
		return
	}
	log.Info().
		Str("best_bid", book.Bid.String()).
		Str("best_ask", book.Ask.String()).
		Msg("Book")
	log.Info().
		Str("amount_balance", bal.Amount.String()).
		Str("price_balance", bal.Price.String()).
		Msg("Balances")

	value, err := Value(bal.Amount, bal.Price, book.Bid)
	if err != nil {
		log.Error().Err(err).Msg("Valuation failed, skipping iteration")
		return
	}
	log.Info().
		Str("value", value.String()).
		Str("gain", value.Sub(l.session.StartValue).String()).
		Msg("Session value")

	last := Quote{Bid: l.session.LastBestBid, Ask: l.session.LastBestAsk}
	if !Moved(book, last) {
		log.Info().Msg("Book unchanged")
		return
	}
	if err := l.planner.Rebalance(&l.session, book, bal); err != nil {
		log.Error().Err(err).Msg("Rebalance aborted")
	}
}

// Session returns a copy of the current session state.
func (l *Loop) Session() Session {
	return l.session
}
