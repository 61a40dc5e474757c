// Package logging provides structured logging for spotlight.
//
// It wraps Go's log/slog to write JSON-formatted lines, either to a debug.log
// file inside a configured directory or to stderr. Child loggers carry
// persistent attributes so every line emitted by the attention core can be
// correlated with the scope and claim it concerns.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("scope opened", "buttons", 1)
//
// # Context Propagation
//
//	scopeLogger := logger.WithScope("7b1c...")
//	scopeLogger.WithClaim("e41f...").Debug("claim evicted", "reason", "outside_click")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"claim evicted","scope_id":"7b1c...","claim_id":"e41f...","reason":"outside_click"}
//
// # Live Level Changes
//
// The level is held in a [slog.LevelVar] shared by a logger and all of its
// children, so [Logger.SetLevel] takes effect immediately everywhere. The
// config watcher uses this to apply logging.level edits without a restart.
//
// # Thread Safety
//
// Logger is safe for concurrent use. Close is guarded by a mutex shared with
// child loggers.
package logging
