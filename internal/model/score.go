package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreRow is a student's term grade for one subject. (student, subject, term, session)
// is unique; re-ingesting the same key overwrites the scores in place.
type ScoreRow struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StudentID       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_score_rows_key" json:"student_id"`
	Subject         string    `gorm:"not null;uniqueIndex:idx_score_rows_key" json:"subject"`
	Term            string    `gorm:"not null;uniqueIndex:idx_score_rows_key;index:idx_score_rows_class_term" json:"term"`
	Session         string    `gorm:"not null;uniqueIndex:idx_score_rows_key;index:idx_score_rows_class_term" json:"session"`
	CAScore         float64   `gorm:"column:ca_score;not null;default:0" json:"ca_score"`
	ExamScore       float64   `gorm:"not null;default:0" json:"exam_score"`
	TotalScore      float64   `gorm:"not null;default:0" json:"total_score"`
	Grade           string    `gorm:"type:varchar(4)" json:"grade"`
	Remark          string    `json:"remark"`
	ClassAtTime     string    `gorm:"not null;index:idx_score_rows_class_term" json:"class_at_time"`
	TeacherID       string    `gorm:"type:varchar(64)" json:"teacher_id"`
	PositionInClass string    `gorm:"type:varchar(8)" json:"position_in_class,omitempty"`
	StudentAverage  float64   `json:"student_average"`
	ClassAverage    float64   `json:"class_average"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s *ScoreRow) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
