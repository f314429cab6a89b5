package models

// DocumentContext is the read-only snapshot of a document's owning project
// and version, resolved once per batch. It also carries the project's
// registered webhook subscribers so no second lookup (and no lock) is needed
// while a dispatch is in flight.
type DocumentContext struct {
	// DocumentPath is the document's path inside the version
	// (e.g. "po/manual.pot").
	DocumentPath string

	// VersionSlug is the URL slug of the owning project version.
	VersionSlug string

	// ProjectSlug is the URL slug of the owning project.
	ProjectSlug string

	// Subscribers are the project's registered webhooks. May be empty.
	Subscribers []Subscriber
}
