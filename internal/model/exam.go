package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamStatus string

const (
	ExamStatusDraft     ExamStatus = "draft"
	ExamStatusPublished ExamStatus = "published"
	ExamStatusClosed    ExamStatus = "closed"
)

// ExamDefinition is a timed CBT paper for one class. TotalMarks is computed once at
// creation and never recomputed.
type ExamDefinition struct {
	ID               string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title            string         `gorm:"not null" json:"title"`
	Subject          string         `gorm:"not null;index" json:"subject"`
	TargetClass      string         `gorm:"not null;index" json:"target_class"`
	Term             string         `gorm:"not null" json:"term"`
	Session          string         `gorm:"not null" json:"session"`
	Duration         int            `gorm:"not null" json:"duration"` // minutes
	StartTime        time.Time      `gorm:"not null" json:"start_time"`
	EndTime          time.Time      `gorm:"not null" json:"end_time"`
	SEBRequired      bool           `gorm:"column:seb_required;not null;default:false" json:"seb_required"`
	ShuffleQuestions bool           `gorm:"not null;default:false" json:"shuffle_questions"`
	AllowBacktrack   bool           `gorm:"not null" json:"allow_backtrack"`
	PassPercentage   int            `gorm:"not null" json:"pass_percentage"`
	Status           ExamStatus     `gorm:"type:varchar(12);not null;default:'draft'" json:"status"`
	TotalMarks       int            `gorm:"not null" json:"total_marks"`
	CreatedBy        string         `gorm:"type:varchar(64)" json:"created_by"`
	Questions        []ExamQuestion `gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"questions,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *ExamDefinition) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ExamQuestion links a bank item into an exam. Marks and CorrectAnswer are snapshots
// taken at link time so later bank edits never reach existing exams or results.
type ExamQuestion struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	ExamID        string           `gorm:"type:varchar(36);not null;uniqueIndex:idx_exam_questions_exam_question" json:"exam_id"`
	QuestionID    string           `gorm:"type:varchar(36);not null;uniqueIndex:idx_exam_questions_exam_question" json:"question_id"`
	Question      QuestionBankItem `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Position      int              `gorm:"not null" json:"position"`
	Marks         int              `gorm:"not null" json:"marks"`
	CorrectAnswer string           `gorm:"type:varchar(1)" json:"correct_answer"`
}
