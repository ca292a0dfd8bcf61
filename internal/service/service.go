package service

import (
	"github.com/GYRAG/beetkar-hub/internal/cache"
	"github.com/GYRAG/beetkar-hub/internal/errors"
	"github.com/GYRAG/beetkar-hub/internal/repository"
	"github.com/GYRAG/beetkar-hub/internal/retention"
)

// Service contains all repositories and service-wide dependencies
type Service struct {
	readings repository.ReadingRepository
	latest   *cache.LatestCache
	sweeper  *retention.Sweeper
}

// New creates a new service instance. The cache may be nil (caching
// disabled); the sweeper may be nil in tests that do not exercise
// retention.
func New(
	readings repository.ReadingRepository,
	latest *cache.LatestCache,
	sweeper *retention.Sweeper,
) *Service {
	return &Service{
		readings: readings,
		latest:   latest,
		sweeper:  sweeper,
	}
}

// Validate checks if all required dependencies are initialized
func (s *Service) Validate() error {
	if s.readings == nil {
		return ErrMissingRepository("readings")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}
