package repository

import (
	"context"

	"github.com/lshigami/cbtengine/internal/model"
	"gorm.io/gorm"
)

type ExamResultRepository interface {
	// Create inserts the result in one statement. A second result for the same
	// (student, exam) pair fails with ErrDuplicate via the unique index.
	Create(ctx context.Context, result *model.ExamAttemptResult) error
	Exists(ctx context.Context, studentID, examID string) (bool, error)
	FindByStudentAndExam(ctx context.Context, studentID, examID string) (*model.ExamAttemptResult, error)
	FindAllByExam(ctx context.Context, examID string) ([]model.ExamAttemptResult, error)
}

type examResultRepository struct {
	db *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) ExamResultRepository {
	return &examResultRepository{db: db}
}

func (r *examResultRepository) Create(ctx context.Context, result *model.ExamAttemptResult) error {
	return translate(r.db.WithContext(ctx).Create(result).Error)
}

func (r *examResultRepository) Exists(ctx context.Context, studentID, examID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ExamAttemptResult{}).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Count(&count).Error
	return count > 0, err
}

func (r *examResultRepository) FindByStudentAndExam(ctx context.Context, studentID, examID string) (*model.ExamAttemptResult, error) {
	var result model.ExamAttemptResult
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		First(&result).Error
	if err != nil {
		return nil, translate(err)
	}
	return &result, nil
}

func (r *examResultRepository) FindAllByExam(ctx context.Context, examID string) ([]model.ExamAttemptResult, error) {
	var results []model.ExamAttemptResult
	err := r.db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("submitted_at ASC").
		Find(&results).Error
	return results, err
}
