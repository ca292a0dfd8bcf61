package monitoring

import (
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// Service provides lightweight operational event accounting. Events are
// logged and counted in process memory; the counts are read back through
// Count.
type Service struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewService creates a new monitoring service
func NewService() *Service {
	return &Service{
		counts: make(map[string]int64),
	}
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	ts := time.Now()

	s.mu.Lock()
	s.counts[eventName]++
	s.mu.Unlock()

	nuts.L.Infof("[Monitoring] Event %s recorded at %v with labels: %v", eventName, ts, labels)
}

// Count returns how often an event has been recorded since startup.
func (s *Service) Count(eventName string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[eventName]
}
