package model

import "errors"

// Sentinel kinds for record parsing errors.
var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidTime   = errors.New("invalid time")
)
