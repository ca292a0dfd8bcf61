// FilePath: api/resources/resources.go
package resources

import (
	"github.com/GYRAG/beetkar-hub/internal/service"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Readings *ReadingHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *service.Service) *Resources {
	return &Resources{
		Readings: &ReadingHandlers{service: svc},
	}
}
