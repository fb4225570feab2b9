package chart

import "errors"

// Sentinel kinds for chart errors.
var (
	ErrEmptyDataset = errors.New("dataset has no valid records")
	ErrMarkNotFound = errors.New("mark not found")
)
