package models

// BatchAccepted is the response body of the ingestion endpoint. The batch is
// processed in the background, so acceptance only confirms enqueueing.
type BatchAccepted struct {
	TraceID     string `json:"trace_id"`
	Transitions int    `json:"transitions"`
}
