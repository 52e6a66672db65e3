// Package log provides slog loggers that mask sensitive information.
//
// SecureHandler wraps any slog.Handler and masks:
//   - email text logged under keys such as content, body or email
//   - HTTP credentials (Authorization, Cookie, X-Api-Key)
//   - secret-looking values (JWTs, bearer tokens, long API keys)
//   - user:password pairs embedded in URLs, including SOCKS5 proxy URLs
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("request sent",
//	    "content", text,           // logged as ***REDACTED***
//	    "content_length", len(text),
//	)
//	slog.SetDefault(logger)
package log
