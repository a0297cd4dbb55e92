package repository

import (
	"context"
	"errors"

	"github.com/lshigami/cbtengine/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClearanceRepository interface {
	// IsCleared reports the finance clearance flag. A student with no row is not cleared.
	IsCleared(ctx context.Context, studentID string) (bool, error)
	Set(ctx context.Context, studentID string, cleared bool) error
}

type clearanceRepository struct {
	db *gorm.DB
}

func NewClearanceRepository(db *gorm.DB) ClearanceRepository {
	return &clearanceRepository{db: db}
}

func (r *clearanceRepository) IsCleared(ctx context.Context, studentID string) (bool, error) {
	var clearance model.StudentClearance
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&clearance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return clearance.ClearedForExams, nil
}

func (r *clearanceRepository) Set(ctx context.Context, studentID string, cleared bool) error {
	clearance := model.StudentClearance{StudentID: studentID, ClearedForExams: cleared}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"cleared_for_exams", "updated_at"}),
	}).Create(&clearance).Error
}
