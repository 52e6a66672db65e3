package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoEndpoint is returned when no classification endpoint is configured
	// and local classification is not requested.
	ErrNoEndpoint = errors.New("no endpoint specified: use --endpoint or --local")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when a size limit is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidMaxConns is returned when the connection cap is negative.
	ErrInvalidMaxConns = errors.New("invalid max connections: must be non-negative")

	// ErrInvalidConcurrency is returned when the evaluation concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidRules is returned when the filter rules are unusable.
	ErrInvalidRules = errors.New("invalid filter rules")
)
