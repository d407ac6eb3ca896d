package impl

import (
	"io"
	"log/slog"
	"time"

	"fleetgate/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.CookieName = "auth_token"
	cfg.Session.TTL = 7 * 24 * time.Hour
	cfg.Search.Debounce = 350 * time.Millisecond
	cfg.Search.DirectLookupLength = 15

	return cfg
}
