package adapter

import "errors"

var (
	// ErrDeliveryFailed wraps transport-level failures and non-2xx
	// subscriber responses.
	ErrDeliveryFailed = errors.New("webhook delivery failed")

	// ErrEmptyTargetURL is recorded when a subscriber row carries no URL;
	// such subscribers are counted as failed without an HTTP call.
	ErrEmptyTargetURL = errors.New("subscriber has empty target url")

	// ErrPayloadSerialization is returned when the notification payload
	// cannot be marshalled; no deliveries are attempted in that case.
	ErrPayloadSerialization = errors.New("error serializing notification payload")
)
