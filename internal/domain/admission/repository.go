package admission

import (
	"context"

	"github.com/google/uuid"
)

// ApplicationFilter contains filtering options for application queries
type ApplicationFilter struct {
	Status ApplicationStatus
	Limit  int
	Offset int
}

// ApplicationRepository defines the persistence interface for applications
type ApplicationRepository interface {
	// Create persists a new application
	Create(ctx context.Context, application *Application) error
	// FindByID finds an application by its internal ID
	FindByID(ctx context.Context, id uuid.UUID) (*Application, error)
	// FindByApplicationID finds an application by its public APP-... identifier
	FindByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// FindAll returns applications matching the filter
	FindAll(ctx context.Context, filter ApplicationFilter) ([]Application, error)
	// Update persists changes to an existing application
	Update(ctx context.Context, application *Application) error
	// Count returns the number of applications matching the filter
	Count(ctx context.Context, filter ApplicationFilter) (int64, error)
}
