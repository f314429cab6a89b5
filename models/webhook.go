package models

// Subscriber is an externally registered webhook endpoint owned by a
// project. The pipeline only reads subscribers; provisioning lives outside
// this service.
type Subscriber struct {
	// TargetURL is the absolute URL notifications are POSTed to.
	TargetURL string `json:"target_url"`

	// Secret, when non-empty, is the shared key used to sign the request
	// body with HMAC-SHA256. An empty secret means unsigned delivery.
	Secret string `json:"-"`
}

// Signed reports whether deliveries to this subscriber carry a signature.
func (s Subscriber) Signed() bool {
	return s.Secret != ""
}
