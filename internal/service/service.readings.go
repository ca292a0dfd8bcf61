// FilePath: internal/service/service.readings.go
package service

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/GYRAG/beetkar-hub/internal/errors"
	"github.com/GYRAG/beetkar-hub/internal/models"
	"github.com/GYRAG/beetkar-hub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// nowUTC is swapped out by tests that pin the history window.
var nowUTC = func() time.Time { return time.Now().UTC() }

// IngestReading validates and stores one reading. The reading is stored
// whole or not at all; there is no partial persist. On success the stored
// row (with its assigned id and timestamp) is returned, the latest-reading
// cache is refreshed, and the retention sweeper gets its per-ingest roll.
func (s *Service) IngestReading(ctx context.Context, in *models.ReadingInput) (*models.SensorReading, error) {
	if fieldErrs := in.Validate(); len(fieldErrs) > 0 {
		return nil, errors.NewValidationError(validationMessage(fieldErrs), nil).WithDetails(fieldErrs)
	}

	reading, err := s.readings.Insert(ctx, in)
	if err != nil {
		return nil, err
	}

	s.latest.Set(ctx, reading)

	if s.sweeper != nil {
		s.sweeper.MaybeSweep()
	}

	return reading, nil
}

// LatestReading returns the most recent stored reading. An empty table is
// a distinct not-found outcome, not a store failure.
func (s *Service) LatestReading(ctx context.Context) (*models.SensorReading, error) {
	if reading, ok := s.latest.Get(ctx); ok {
		return reading, nil
	}

	reading, err := s.readings.Latest(ctx)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NewNotFoundError("No sensor data available", err)
	}
	if err != nil {
		return nil, err
	}

	s.latest.Set(ctx, reading)
	return reading, nil
}

// History returns the windowed series for the range, raw or hourly per the
// range policy. An empty window yields an empty (non-nil) series.
func (s *Service) History(ctx context.Context, r models.TimeRange) (*models.History, error) {
	policy := r.Policy()
	since := nowUTC().Add(-policy.Lookback)

	history := &models.History{Range: r, Aggregation: policy.Aggregation}

	switch policy.Aggregation {
	case models.AggregationHourly:
		hourly, err := s.readings.HourlyAverages(ctx, since)
		if err != nil {
			return nil, err
		}
		history.Hourly = hourly
	default:
		raw, err := s.readings.ListSince(ctx, since)
		if err != nil {
			return nil, err
		}
		history.Raw = raw
	}

	nuts.L.Infof("[ReadingService] History range=%s aggregation=%s rows=%d",
		r, policy.Aggregation, historyLen(history))
	return history, nil
}

func historyLen(h *models.History) int {
	if h.Aggregation == models.AggregationHourly {
		return len(h.Hourly)
	}
	return len(h.Raw)
}

func validationMessage(fieldErrs []models.FieldError) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Error())
	}
	return "Invalid sensor data: " + strings.Join(parts, "; ")
}
