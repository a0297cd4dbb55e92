package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultQuestionMarks applies whenever a question carries no positive mark value.
const DefaultQuestionMarks = 2

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeTheory         QuestionType = "theory"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// OptionLabels are the letters a multiple-choice option may carry, in display order.
var OptionLabels = []string{"A", "B", "C", "D", "E"}

type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuestionBankItem is an assessment item authored by an instructor. Once linked into a
// published exam its correct answer and marks are captured on the ExamQuestion row.
type QuestionBankItem struct {
	ID            string                     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Stem          string                     `gorm:"type:text;not null" json:"stem"`
	ImageURL      *string                    `json:"image_url,omitempty"`
	Type          QuestionType               `gorm:"type:varchar(20);not null;default:'multiple-choice'" json:"type"`
	Options       datatypes.JSONSlice[Option] `json:"options"`
	CorrectAnswer string                     `gorm:"type:varchar(1)" json:"correct_answer"`
	Explanation   string                     `gorm:"type:text" json:"explanation,omitempty"`
	Marks         int                        `gorm:"not null;default:2" json:"marks"`
	Subject       string                     `gorm:"not null;index" json:"subject"`
	Difficulty    Difficulty                 `gorm:"type:varchar(10);not null;default:'medium'" json:"difficulty"`
	CreatedBy     string                     `gorm:"type:varchar(64)" json:"created_by"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
	DeletedAt     gorm.DeletedAt             `gorm:"index" json:"-"`
}

func (q *QuestionBankItem) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// EffectiveMarks returns the question's marks, falling back to DefaultQuestionMarks.
func (q QuestionBankItem) EffectiveMarks() int {
	return EffectiveMarks(q.Marks)
}

func EffectiveMarks(marks int) int {
	if marks <= 0 {
		return DefaultQuestionMarks
	}
	return marks
}
