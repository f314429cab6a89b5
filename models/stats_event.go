package models

// DocumentStatisticUpdated is the internal fire-and-forget event published
// once per state transition for cache and metrics consumers. It is emitted
// for every batch regardless of webhook outcome.
type DocumentStatisticUpdated struct {
	VersionID     int64        `json:"version_id"`
	DocumentID    int64        `json:"document_id"`
	LocaleID      string       `json:"locale_id"`
	WordCount     int          `json:"word_count"`
	PreviousState ContentState `json:"previous_state"`
	NewState      ContentState `json:"new_state"`
}
