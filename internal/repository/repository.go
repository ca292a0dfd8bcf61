// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/GYRAG/beetkar-hub/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ReadingRepository defines the interface for sensor reading storage.
// Identifiers and timestamps are assigned by the store on insert; callers
// never control either.
type ReadingRepository interface {
	// Insert appends one reading and returns the stored row including its
	// assigned id and timestamp.
	Insert(ctx context.Context, in *models.ReadingInput) (*models.SensorReading, error)
	// Latest returns the reading with the greatest timestamp, ties broken
	// by id. Returns ErrNotFound when the table is empty.
	Latest(ctx context.Context) (*models.SensorReading, error)
	// ListSince returns all readings at or after the cutoff, ascending by
	// timestamp then id.
	ListSince(ctx context.Context, since time.Time) ([]models.SensorReading, error)
	// HourlyAverages returns per-hour metric means for readings at or after
	// the cutoff, one row per non-empty hour, ascending by bucket.
	HourlyAverages(ctx context.Context, since time.Time) ([]models.HourlyAverage, error)
	// DeleteOlderThan removes readings strictly older than the cutoff and
	// returns how many rows were deleted.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
