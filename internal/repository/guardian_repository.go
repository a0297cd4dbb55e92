package repository

import (
	"context"

	"github.com/lshigami/cbtengine/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuardianRepository interface {
	// Link is idempotent.
	Link(ctx context.Context, guardianID, studentID string) error
	IsLinked(ctx context.Context, guardianID, studentID string) (bool, error)
}

type guardianRepository struct {
	db *gorm.DB
}

func NewGuardianRepository(db *gorm.DB) GuardianRepository {
	return &guardianRepository{db: db}
}

func (r *guardianRepository) Link(ctx context.Context, guardianID, studentID string) error {
	link := model.GuardianLink{GuardianID: guardianID, StudentID: studentID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guardian_id"}, {Name: "student_id"}},
		DoNothing: true,
	}).Create(&link).Error
}

func (r *guardianRepository) IsLinked(ctx context.Context, guardianID, studentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.GuardianLink{}).
		Where("guardian_id = ? AND student_id = ?", guardianID, studentID).
		Count(&count).Error
	return count > 0, err
}
