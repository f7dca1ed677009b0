// Package log provides logging for webharvest with automatic masking of
// API credentials and truncation of oversized values, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - Automatic masking of credential-bearing attributes (subscription
//     tokens, API keys, authorization headers, cookies)
//   - Truncation of oversized attribute values, so debug-logging a fetched
//     page body or search payload never floods the log
//   - Configurable log levels with verbose mode support
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("search request",
//	    "x-subscription-token", token, // masked in output
//	    "body", hugeHTML,              // truncated in output
//	)
package log
