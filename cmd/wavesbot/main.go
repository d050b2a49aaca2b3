// Wavesbot - single-pair market maker for the Waves DEX
//
// The bot polls the matcher's order book on a fixed cadence. Whenever the
// best bid or ask differs from the prices it last quoted at, it cancels
// its resting orders and re-quotes both sides one price step outside the
// observed book, sized from current balances. It also tracks the session's
// value in amount-asset units against the baseline fixed at startup.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"wavesbot/internal/asset"
	"wavesbot/internal/config"
	"wavesbot/internal/logging"
	"wavesbot/internal/maker"
	"wavesbot/internal/notify"
	"wavesbot/internal/waves"
)

const version = "1.0.0"

func main() {
	path := os.Getenv("WAVESBOT_CONFIG")
	if path == "" {
		path = "wavesbot.env"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Setup(".", cfg.Debug)

	log.Info().Msg("++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++")
	log.Info().Msg("+++++++++++++++++++   START NEW SESSION ++++++++++++++++++++++++")
	log.Info().Msg("++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++")

	acc, err := waves.NewAccount(cfg.PrivateKey, cfg.ChainID())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to derive account")
	}

	node := waves.NewNodeClient(cfg.NodeURL)
	matcher, err := waves.NewMatcherClient(cfg.MatcherURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to reach matcher")
	}

	amountAsset, err := waves.ResolveAsset(node, cfg.AmountAssetID, "")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve amount asset")
	}
	priceAsset, err := waves.ResolveAsset(node, cfg.PriceAssetID, cfg.PriceAssetName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve price asset")
	}
	pair := asset.Pair{Amount: amountAsset, Price: priceAsset}

	log.Info().
		Str("version", version).
		Str("network", cfg.Network).
		Str("pair", pair.String()).
		Str("price_asset_id", cfg.PriceAssetID).
		Int32("price_decimals", priceAsset.Decimals).
		Int32("amount_decimals", amountAsset.Decimals).
		Str("price_step", cfg.PriceStep.String()).
		Msg("Market configured")

	notifier, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, pair.String())
	if err != nil {
		log.Warn().Err(err).Msg("Telegram unavailable, notifications disabled")
		notifier, _ = notify.NewTelegram("", 0, pair.String())
	}

	gw := waves.NewGateway(node, matcher, acc, pair, cfg.OrderFee, cfg.OrderLifetime)
	planner := maker.NewPlanner(gw, gw, notifier, amountAsset.Decimals, cfg.PriceStep, cfg.OrderFee, cfg.MinAmount)
	loop := maker.NewLoop(gw, planner, notifier, cfg.PollInterval)

	stop := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("Received shutdown signal")
		close(stop)
	}()

	if err := loop.Run(stop); err != nil {
		log.Fatal().Err(err).Msg("Session aborted")
	}
	log.Info().Msg("Goodbye")
}
