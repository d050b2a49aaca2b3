// Package notify pushes one-way session events to Telegram.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"wavesbot/internal/maker"
)

// Telegram sends best-effort notifications to a single chat. Built
// without credentials it is disabled and all sends are no-ops.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	pair   string
}

// NewTelegram builds the notifier. An empty token or chat id yields a
// disabled notifier, not an error.
func NewTelegram(token string, chatID int64, pair string) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return &Telegram{pair: pair}, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	log.Info().Str("username", api.Self.UserName).Msg("Telegram notifier ready")
	return &Telegram{api: api, chatID: chatID, pair: pair}, nil
}

// SessionStarted reports the baseline value a new session was fixed at.
func (t *Telegram) SessionStarted(startValue decimal.Decimal) {
	t.send(fmt.Sprintf("Session started on %s, baseline value %s", t.pair, startValue.String()))
}

// OrderPlaced reports a posted order.
func (t *Telegram) OrderPlaced(o maker.Order) {
	t.send(fmt.Sprintf("Posted %s %d @ %s on %s", o.Side, o.Amount, o.Price.String(), t.pair))
}

func (t *Telegram) send(text string) {
	if t.api == nil {
		return
	}
	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		log.Debug().Err(err).Msg("Telegram send failed")
	}
}
