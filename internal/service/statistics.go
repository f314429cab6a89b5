// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

type statisticsAggregator struct {
	logger *logger.Logger
}

// NewStatisticsAggregator constructs the default [StatisticsAggregator].
func NewStatisticsAggregator(logger *logger.Logger) StatisticsAggregator {
	return &statisticsAggregator{logger: logger}
}

// Aggregate implements [StatisticsAggregator]. The fold is
// order-independent; a transition whose previous and new state coincide
// still performs the lookup and contributes a net zero.
func (s *statisticsAggregator) Aggregate(ctx context.Context, transitions []models.StateTransition, wordCountOf WordCountFunc) (models.WordCountDelta, error) {
	delta := make(models.WordCountDelta)

	var lookupErrs []error
	for _, tr := range transitions {
		wordCount, err := wordCountOf(ctx, tr.TextUnitID)
		if err != nil {
			lookupErrs = append(lookupErrs,
				fmt.Errorf("%w: text unit %d: %w", ErrWordCountLookup, tr.TextUnitID, err))
			continue
		}

		delta.Apply(tr.PreviousState, tr.NewState, wordCount)
	}

	return delta, errors.Join(lookupErrs...)
}
