// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied after all sources are merged and before validation.
const (
	DefaultDriver          = "pgx"
	DefaultDeliveryTimeout = 10 * time.Second
	DefaultQueueSize       = 64
)

// applyDefaults fills the merged config's optional fields that no source
// provided a value for.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Dispatch.DeliveryTimeout <= 0 {
		cfg.Dispatch.DeliveryTimeout = DefaultDeliveryTimeout
	}
	if cfg.Workers.QueueSize <= 0 {
		cfg.Workers.QueueSize = DefaultQueueSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
