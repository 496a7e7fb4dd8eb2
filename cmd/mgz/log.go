package main

import (
	"log/slog"
	"os"
)

// newDebugLogger builds a stderr text logger at debug level, mirroring the
// reference CLI's --debug flag (logging.basicConfig(level=logging.DEBUG,
// stream=sys.stderr)).
func newDebugLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h)
}
