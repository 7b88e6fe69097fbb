package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/admission"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormApplicationRepository implements ApplicationRepository using GORM
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository creates a new GormApplicationRepository
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Create persists a new application
func (r *GormApplicationRepository) Create(ctx context.Context, application *admission.Application) error {
	model := models.ApplicationModelFromDomain(application)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds an application by its internal ID
func (r *GormApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*admission.Application, error) {
	var model models.ApplicationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByApplicationID finds an application by its public APP-... identifier
func (r *GormApplicationRepository) FindByApplicationID(ctx context.Context, applicationID string) (*admission.Application, error) {
	var model models.ApplicationModel
	if err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns applications matching the filter, newest first
func (r *GormApplicationRepository) FindAll(ctx context.Context, filter admission.ApplicationFilter) ([]admission.Application, error) {
	var applicationModels []models.ApplicationModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ApplicationModel{}), filter).
		Order("application_date DESC")

	if err := query.Find(&applicationModels).Error; err != nil {
		return nil, err
	}

	applications := make([]admission.Application, len(applicationModels))
	for i, model := range applicationModels {
		applications[i] = *model.ToDomain()
	}
	return applications, nil
}

// Update persists changes to an existing application
func (r *GormApplicationRepository) Update(ctx context.Context, application *admission.Application) error {
	model := models.ApplicationModelFromDomain(application)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count returns the number of applications matching the filter
func (r *GormApplicationRepository) Count(ctx context.Context, filter admission.ApplicationFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ApplicationModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormApplicationRepository) applyFilter(query *gorm.DB, filter admission.ApplicationFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}
