package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/internal/utils"
	"github.com/MKhiriev/go-translation-webhooks/models"
	"github.com/go-resty/resty/v2"
)

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the request body,
// computed with the subscriber's shared secret. Absent on unsigned
// deliveries.
const SignatureHeader = "X-Webhook-Signature"

// webhookDispatcher is the resty-backed implementation of
// [WebhookDispatcher]. One instance (and one underlying connection pool) is
// shared by the whole process; all methods are safe for concurrent use.
type webhookDispatcher struct {
	client *resty.Client
	uuid   *utils.UUIDGenerator

	delivered atomic.Int64
	failed    atomic.Int64

	logger *logger.Logger
}

// NewWebhookDispatcher constructs a [WebhookDispatcher] with the configured
// per-delivery timeout.
func NewWebhookDispatcher(cfg config.Dispatch, logger *logger.Logger) WebhookDispatcher {
	timeout := cfg.DeliveryTimeout
	if timeout <= 0 {
		timeout = config.DefaultDeliveryTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "go-translation-webhooks")

	logger.Debug().Dur("delivery_timeout", timeout).Msg("webhook dispatcher created")

	return &webhookDispatcher{
		client: client,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Dispatch implements [WebhookDispatcher]. The payload is serialised exactly
// once; every subscriber gets the same bytes, so a configured secret always
// signs the body the subscriber actually receives.
func (d *webhookDispatcher) Dispatch(ctx context.Context, subscribers []models.Subscriber, payload models.NotificationPayload) []DeliveryAttempt {
	log := logger.FromContext(ctx)

	if len(subscribers) == 0 {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Err(err).Str("func", "*webhookDispatcher.Dispatch").Msg("error: payload is not serializable")
		d.failed.Add(int64(len(subscribers)))

		attempts := make([]DeliveryAttempt, len(subscribers))
		for i, sub := range subscribers {
			attempts[i] = DeliveryAttempt{
				TargetURL: sub.TargetURL,
				Err:       fmt.Errorf("%w: %w", ErrPayloadSerialization, err),
			}
		}
		return attempts
	}

	// fan out; a slow or dead subscriber only costs its own goroutine
	attempts := make([]DeliveryAttempt, len(subscribers))
	var wg sync.WaitGroup
	for i, sub := range subscribers {
		wg.Add(1)
		go func(i int, sub models.Subscriber) {
			defer wg.Done()
			attempts[i] = d.deliver(ctx, sub, body)
		}(i, sub)
	}
	wg.Wait()

	for _, attempt := range attempts {
		d.logAttempt(log, attempt)
	}

	return attempts
}

// Stats implements [WebhookDispatcher].
func (d *webhookDispatcher) Stats() (delivered, failed int64) {
	return d.delivered.Load(), d.failed.Load()
}

func (d *webhookDispatcher) deliver(ctx context.Context, sub models.Subscriber, body []byte) DeliveryAttempt {
	attempt := DeliveryAttempt{
		DeliveryID: d.uuid.Generate(),
		TargetURL:  sub.TargetURL,
		Signed:     sub.Signed(),
	}

	if sub.TargetURL == "" {
		attempt.Err = ErrEmptyTargetURL
		d.failed.Add(1)
		return attempt
	}

	req := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	if sub.Signed() {
		req.SetHeader(SignatureHeader, utils.SignHex(body, sub.Secret))
	}

	start := time.Now()
	resp, err := req.Post(sub.TargetURL)
	attempt.Duration = time.Since(start)

	if err != nil {
		attempt.Err = fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
		d.failed.Add(1)
		return attempt
	}

	attempt.StatusCode = resp.StatusCode()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		attempt.Err = fmt.Errorf("%w: subscriber returned %d", ErrDeliveryFailed, resp.StatusCode())
		d.failed.Add(1)
		return attempt
	}

	d.delivered.Add(1)
	return attempt
}

func (d *webhookDispatcher) logAttempt(log *logger.Logger, attempt DeliveryAttempt) {
	event := log.Info()
	if attempt.Err != nil {
		event = log.Warn().Err(attempt.Err)
	}

	event.
		Str("delivery_id", attempt.DeliveryID).
		Str("target_url", attempt.TargetURL).
		Bool("signed", attempt.Signed).
		Int("status", attempt.StatusCode).
		Dur("duration", attempt.Duration).
		Msg("webhook delivery finished")
}
