package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
)

// Storages bundles the read-only lookup repositories consumed by the
// pipeline.
type Storages struct {
	TextFlows TextFlowRepository
	Documents DocumentRepository
	Persons   PersonRepository
}

// NewStorages connects to the configured lookup database, applies
// migrations, and constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting lookup database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating lookup database: %w", err)
	}

	return &Storages{
		TextFlows: NewTextFlowRepository(db, log),
		Documents: NewDocumentRepository(db, log),
		Persons:   NewPersonRepository(db, log),
	}, nil
}
