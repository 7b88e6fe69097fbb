package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/academics"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProgramRepository implements ProgramRepository using GORM
type GormProgramRepository struct {
	db *gorm.DB
}

// NewGormProgramRepository creates a new GormProgramRepository
func NewGormProgramRepository(db *gorm.DB) *GormProgramRepository {
	return &GormProgramRepository{db: db}
}

// FindByID finds a program by ID
func (r *GormProgramRepository) FindByID(ctx context.Context, id uuid.UUID) (*academics.Program, error) {
	var model models.ProgramModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all active programs ordered by name
func (r *GormProgramRepository) FindAll(ctx context.Context) ([]academics.Program, error) {
	var programModels []models.ProgramModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("program_name ASC").
		Find(&programModels).Error; err != nil {
		return nil, err
	}

	programs := make([]academics.Program, len(programModels))
	for i, model := range programModels {
		programs[i] = *model.ToDomain()
	}
	return programs, nil
}
