package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pcosrisk/internal/model"
)

// AssessmentRepository defines assessment persistence operations. There is
// no update or delete: assessments are immutable once recorded.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]model.Assessment, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository.
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Create inserts a new assessment row in a single statement.
func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(assessment).Error
}

// ListByUser returns a page of the user's assessments, oldest first.
func (r *assessmentRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]model.Assessment, error) {
	var assessments []model.Assessment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

// CountByUser returns the number of assessments the user owns.
func (r *assessmentRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Assessment{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
