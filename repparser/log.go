// This file contains the package-level structured logger.
//
// The original parser threads a module-level LOGGER.debug(...) call through
// every stage function. log/slog is the standard library's structured
// logger and is the idiomatic stand-in here: see DESIGN.md for why no
// third-party logger from the example pack fit better.

package repparser

import "log/slog"

var pkgLogger = slog.Default()

// SetLogger overrides the logger used for stage-boundary tracing.
// Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	pkgLogger = l
}

func logger() *slog.Logger { return pkgLogger }
