package controller

import "errors"

var (
	// ErrNoVerdict is recorded when a classifier returns neither a verdict nor an error.
	ErrNoVerdict = errors.New("classifier returned no verdict")

	// ErrClassifierPanic is recorded when a classifier panics.
	ErrClassifierPanic = errors.New("classifier panicked")
)
