package repository

import (
	"context"

	"github.com/lshigami/cbtengine/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	// Create stores the exam together with its ExamQuestion links.
	Create(ctx context.Context, exam *model.ExamDefinition) error
	// FindByIDWithQuestions loads the exam with its linked questions in paper order.
	FindByIDWithQuestions(ctx context.Context, id string) (*model.ExamDefinition, error)
	FindByClass(ctx context.Context, className string, status model.ExamStatus) ([]model.ExamDefinition, error)
	UpdateStatus(ctx context.Context, id string, status model.ExamStatus) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *model.ExamDefinition) error {
	// ExamQuestion.Question is left zero by callers, so only the link rows are inserted.
	return translate(r.db.WithContext(ctx).Create(exam).Error)
}

func (r *examRepository) FindByIDWithQuestions(ctx context.Context, id string) (*model.ExamDefinition, error) {
	var exam model.ExamDefinition
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_questions.position ASC")
		}).
		Preload("Questions.Question", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("id = ?", id).
		First(&exam).Error
	if err != nil {
		return nil, translate(err)
	}
	return &exam, nil
}

func (r *examRepository) FindByClass(ctx context.Context, className string, status model.ExamStatus) ([]model.ExamDefinition, error) {
	var exams []model.ExamDefinition
	query := r.db.WithContext(ctx).Where("target_class = ?", className)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("start_time ASC").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) UpdateStatus(ctx context.Context, id string, status model.ExamStatus) error {
	res := r.db.WithContext(ctx).Model(&model.ExamDefinition{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
