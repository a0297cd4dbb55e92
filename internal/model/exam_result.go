package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResultStatus string

const (
	ResultStatusPass ResultStatus = "pass"
	ResultStatusFail ResultStatus = "fail"
)

// NoAnswer is recorded for exam questions the student left unanswered.
const NoAnswer = "NONE"

type GradedAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
	IsCorrect      bool   `json:"isCorrect"`
	MarksEarned    int    `json:"marksEarned"`
}

// ExamAttemptResult is the single, immutable record of a student's CBT sitting.
// The (student_id, exam_id) unique index is what makes submission at-most-once.
type ExamAttemptResult struct {
	ID            string                           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StudentID     string                           `gorm:"type:varchar(64);not null;uniqueIndex:idx_exam_results_student_exam" json:"student_id"`
	ExamID        string                           `gorm:"type:varchar(36);not null;uniqueIndex:idx_exam_results_student_exam;index" json:"exam_id"`
	Score         int                              `gorm:"not null" json:"score"`
	TotalPossible int                              `gorm:"not null" json:"total_possible"`
	Percentage    int                              `gorm:"not null" json:"percentage"`
	Status        ResultStatus                     `gorm:"type:varchar(8);not null" json:"status"`
	Answers       datatypes.JSONSlice[GradedAnswer] `json:"answers"`
	SubmittedAt   time.Time                        `gorm:"not null" json:"submitted_at"`
	CreatedAt     time.Time                        `json:"created_at"`
}

func (r *ExamAttemptResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
