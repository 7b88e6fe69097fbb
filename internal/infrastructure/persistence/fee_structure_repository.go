package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/finance"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFeeStructureRepository implements FeeStructureRepository using GORM
type GormFeeStructureRepository struct {
	db *gorm.DB
}

// NewGormFeeStructureRepository creates a new GormFeeStructureRepository
func NewGormFeeStructureRepository(db *gorm.DB) *GormFeeStructureRepository {
	return &GormFeeStructureRepository{db: db}
}

// FindByProgramAndYear finds the fee structure for a program and academic year
func (r *GormFeeStructureRepository) FindByProgramAndYear(ctx context.Context, programID uuid.UUID, academicYear string) (*finance.FeeStructure, error) {
	var model models.FeeStructureModel
	if err := r.db.WithContext(ctx).
		Where("program_id = ? AND academic_year = ?", programID, academicYear).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}
