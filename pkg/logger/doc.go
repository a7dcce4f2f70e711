// Package logger configures structured logging for the tool on top of Go's
// slog package.
//
// A single factory, New, builds a *slog.Logger from a set of Option
// functions: output format (text for the terminal, json for scripted runs),
// minimum level, destination writer, and static attributes stamped on every
// record. The default is a text handler on stderr at info level, which
// keeps diagnostics out of stdout where check verdicts go.
//
// Helper constructors in attr.go return the attributes this codebase logs
// repeatedly (Error, Rule, Check, File, Rows) so keys stay consistent
// across call sites.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	logger.SetAsDefault(log)
//
//	slog.Debug("registered rules file",
//	    logger.File(path),
//	    logger.Rows(len(defs)),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, allowing calls like
//
//	log.Info("check finished", logger.Error(err))
//
// without an additional nil check.
package logger
