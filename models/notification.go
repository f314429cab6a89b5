package models

// NotificationPayload is the outbound webhook body describing the word-count
// impact of one committed translation update. It is built once per batch and
// fanned out unchanged to every subscriber of the owning project.
//
// ContentStateWordCounts carries the raw signed deltas produced by the
// aggregation; buckets are never clamped to zero, so the values always sum
// to zero (see WordCountDelta).
type NotificationPayload struct {
	Actor                  UserSummary    `json:"actor"`
	ProjectSlug            string         `json:"projectSlug"`
	VersionSlug            string         `json:"versionSlug"`
	DocumentID             string         `json:"documentId"`
	LocaleID               string         `json:"localeId"`
	ContentStateWordCounts WordCountDelta `json:"contentStateWordCounts"`
}
