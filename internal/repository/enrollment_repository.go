package repository

import (
	"context"

	"github.com/lshigami/cbtengine/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository interface {
	Enroll(ctx context.Context, studentID, className string) error
	// FilterMembers returns the subset of studentIDs actively enrolled in className.
	FilterMembers(ctx context.Context, className string, studentIDs []string) ([]string, error)
	ClassOf(ctx context.Context, studentID string) (string, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Enroll(ctx context.Context, studentID, className string) error {
	enrollment := model.ClassEnrollment{StudentID: studentID, ClassName: className, Active: true}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "class_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"active", "updated_at"}),
	}).Create(&enrollment).Error
}

func (r *enrollmentRepository) FilterMembers(ctx context.Context, className string, studentIDs []string) ([]string, error) {
	var members []string
	if len(studentIDs) == 0 {
		return members, nil
	}
	err := r.db.WithContext(ctx).Model(&model.ClassEnrollment{}).
		Where("class_name = ? AND active = ? AND student_id IN ?", className, true, studentIDs).
		Distinct().
		Pluck("student_id", &members).Error
	return members, err
}

func (r *enrollmentRepository) ClassOf(ctx context.Context, studentID string) (string, error) {
	var enrollment model.ClassEnrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND active = ?", studentID, true).
		Order("updated_at DESC").
		First(&enrollment).Error
	if err != nil {
		return "", translate(err)
	}
	return enrollment.ClassName, nil
}
