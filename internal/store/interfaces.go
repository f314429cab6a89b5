package store

import (
	"context"

	"github.com/MKhiriev/go-translation-webhooks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TextFlowRepository exposes the single text-unit lookup the pipeline
// needs: the word count of a unit's source content.
type TextFlowRepository interface {
	// WordCount returns the source word count of the given text unit.
	// Returns [ErrNotFound] if the unit does not exist.
	WordCount(ctx context.Context, textUnitID int64) (int, error)
}

// DocumentRepository resolves the owning project/version context of a
// document, including the project's registered webhook subscribers.
type DocumentRepository interface {
	// DocumentContext returns a read-only snapshot of the document's path,
	// owning version and project slugs, and the project's subscribers.
	// Returns [ErrNotFound] if the document no longer exists (it may have
	// been deleted concurrently with the transition that references it).
	DocumentContext(ctx context.Context, documentID int64) (models.DocumentContext, error)
}

// PersonRepository resolves a privacy-filtered summary of the person whose
// action produced a batch.
type PersonRepository interface {
	// PersonSummary returns the person's display summary. The email field
	// is populated only when displayEmail is true. Returns [ErrNotFound]
	// if the person does not exist.
	PersonSummary(ctx context.Context, personID int64, displayEmail bool) (models.UserSummary, error)
}
