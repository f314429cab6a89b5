// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements outbound delivery of webhook notifications.
//
// The primary abstraction is [WebhookDispatcher], which decouples the update
// pipeline from the HTTP mechanics of delivery: body serialisation, request
// signing, per-delivery timeouts, and per-subscriber failure isolation. The
// package ships one implementation backed by a shared resty client
// ([NewWebhookDispatcher]).
//
// Delivery is best-effort and at-most-once: failures are logged and counted,
// never retried. Durable re-delivery, when needed, belongs to an external
// queue layered on top of this package.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-translation-webhooks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// WebhookDispatcher fans one notification payload out to a set of
// subscribers.
type WebhookDispatcher interface {
	// Dispatch serialises payload once and POSTs it to every subscriber
	// concurrently. One subscriber's failure never prevents delivery to
	// another. The returned attempts describe each delivery's outcome and
	// are intended for logging and tests; callers on the hot path may
	// ignore them.
	Dispatch(ctx context.Context, subscribers []models.Subscriber, payload models.NotificationPayload) []DeliveryAttempt

	// Stats returns the number of successful and failed deliveries since
	// process start.
	Stats() (delivered, failed int64)
}

// DeliveryAttempt is the ephemeral record of one webhook delivery. It is
// never persisted; retry state does not survive a restart by design of the
// at-most-once contract.
type DeliveryAttempt struct {
	// DeliveryID uniquely identifies the attempt in logs.
	DeliveryID string

	// TargetURL is the subscriber endpoint the payload was POSTed to.
	TargetURL string

	// Signed reports whether the request carried an HMAC signature.
	Signed bool

	// StatusCode is the HTTP status returned by the subscriber, or zero if
	// the request never completed (timeout, connection error).
	StatusCode int

	// Duration is the wall time the delivery took.
	Duration time.Duration

	// Err is non-nil when the delivery failed (transport error, timeout,
	// or non-2xx response).
	Err error
}

// Succeeded reports whether the subscriber accepted the payload.
func (a DeliveryAttempt) Succeeded() bool {
	return a.Err == nil
}
