package service

import "errors"

var (
	// ErrWordCountLookup wraps word-count resolution failures reported by
	// the aggregator. Partial: the rest of the batch still aggregates.
	ErrWordCountLookup = errors.New("error looking up text unit word count")

	// ErrIncompleteNotification is returned by the builder when a required
	// payload field is missing.
	ErrIncompleteNotification = errors.New("notification payload is missing required fields")
)
