// Package logging configures the global zerolog logger: human-readable
// lines on the console, mirrored into an append-only per-day file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "Jan 02 2006 15:04:05 UTC"

// Setup routes the global logger to stderr and to bot_YYYY-MM-DD.log (UTC
// date) under dir. The file is best-effort: if it cannot be opened the bot
// keeps running on the console alone, and write failures never surface.
func Setup(dir string, debug bool) {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}}

	name := fmt.Sprintf("bot_%s.log", time.Now().UTC().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err == nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: file, TimeFormat: timeFormat, NoColor: true})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err != nil {
		log.Warn().Err(err).Msg("Log file unavailable, console only")
	}
}
