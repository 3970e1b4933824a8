// Package logger provides structured logging utilities built on Go's standard slog package.
//
// Loggers are always passed explicitly. Nothing in this module configures a
// process-wide default; components that emit diagnostics accept a
// *slog.Logger through their options and stay silent without one.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithProduction("notify"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Warn("only first 30 records will be added",
//		logger.Component("table"),
//		logger.Rows(120),
//		logger.Limit(30),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, so they can be
// passed unconditionally:
//
//	log.Error("delivery failed",
//		logger.Error(err),         // dropped when err == nil
//		logger.Provider("smtp"),
//		logger.Recipients(3),
//	)
//
// Use Discard in tests or wherever logs must be suppressed.
package logger
