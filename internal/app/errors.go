package service

import "errors"

// Error constants
var (
	// ErrNotReady is returned while no chart has been loaded.
	ErrNotReady = errors.New("chart not loaded")
	// ErrNotStarted is returned by Reload before Start.
	ErrNotStarted = errors.New("service not started")
)
