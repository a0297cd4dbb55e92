package repository

import (
	"context"
	"time"

	"github.com/lshigami/cbtengine/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RankingUpdate is the broadsheet annotation written onto a student's rows.
type RankingUpdate struct {
	StudentID       string
	Term            string
	Session         string
	PositionInClass string
	StudentAverage  float64
	ClassAverage    float64
}

type ScoreRepository interface {
	// UpsertBatch writes all rows in one transaction keyed on
	// (student_id, subject, term, session). Any failure rolls back the whole batch.
	UpsertBatch(ctx context.Context, rows []model.ScoreRow) error
	FindByClassTermSession(ctx context.Context, className, term, session string) ([]model.ScoreRow, error)
	UpdateRanking(ctx context.Context, update RankingUpdate) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

var scoreUpsertColumns = []string{
	"ca_score",
	"exam_score",
	"total_score",
	"grade",
	"remark",
	"class_at_time",
	"teacher_id",
	"updated_at",
}

func (r *scoreRepository) UpsertBatch(ctx context.Context, rows []model.ScoreRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			row := rows[i]
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "student_id"},
					{Name: "subject"},
					{Name: "term"},
					{Name: "session"},
				},
				DoUpdates: clause.AssignmentColumns(scoreUpsertColumns),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *scoreRepository) FindByClassTermSession(ctx context.Context, className, term, session string) ([]model.ScoreRow, error) {
	var rows []model.ScoreRow
	err := r.db.WithContext(ctx).
		Where("class_at_time = ? AND term = ? AND session = ?", className, term, session).
		Order("student_id ASC, subject ASC").
		Find(&rows).Error
	return rows, err
}

func (r *scoreRepository) UpdateRanking(ctx context.Context, update RankingUpdate) error {
	return r.db.WithContext(ctx).Model(&model.ScoreRow{}).
		Where("student_id = ? AND term = ? AND session = ?", update.StudentID, update.Term, update.Session).
		Updates(map[string]any{
			"position_in_class": update.PositionInClass,
			"student_average":   update.StudentAverage,
			"class_average":     update.ClassAverage,
			"updated_at":        time.Now(),
		}).Error
}
