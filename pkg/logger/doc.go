// Package logger builds log/slog loggers from functional options and provides
// helpers that keep attribute names consistent across packages.
//
//	log := logger.New(
//	    logger.WithDevelopment("signup"),
//	    logger.WithOutput(os.Stderr),
//	)
//	v := username.New(username.WithLogger(log))
//
// New defaults to JSON output at info level on stdout. WithFormat panics on an
// unknown format so that misconfiguration is caught at startup. Discard
// returns a logger that drops everything and is used where no logger was
// supplied.
//
// Attribute helpers such as Error and Codes return an empty slog.Attr for nil
// or empty input, which slog handlers skip, so callers need no nil checks:
//
//	log.Debug("username rejected", logger.Username(name), logger.Codes(codes))
package logger
