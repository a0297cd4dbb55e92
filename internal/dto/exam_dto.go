package dto

import "time"

// CreateExamRequest is the staff payload for assembling an exam paper from bank items.
type CreateExamRequest struct {
	Title            string    `json:"title" binding:"required"`
	Subject          string    `json:"subject" binding:"required"`
	TargetClass      string    `json:"target_class" binding:"required"`
	Term             string    `json:"term" binding:"required"`
	Session          string    `json:"session" binding:"required"`
	Duration         int       `json:"duration" binding:"required,min=1"`
	StartTime        time.Time `json:"start_time" binding:"required"`
	EndTime          time.Time `json:"end_time" binding:"required"`
	SEBRequired      bool      `json:"seb_required"`
	ShuffleQuestions bool      `json:"shuffle_questions"`
	AllowBacktrack   *bool     `json:"allow_backtrack"`
	PassPercentage   *int      `json:"pass_percentage" binding:"omitempty,min=0,max=100"`
	Status           string    `json:"status" binding:"omitempty,oneof=draft published"`
	QuestionIDs      []string  `json:"question_ids" binding:"required,min=1"`
}

type UpdateExamStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft published closed"`
}

type ExamQuestionResponse struct {
	QuestionID    string `json:"question_id"`
	Position      int    `json:"position"`
	Marks         int    `json:"marks"`
	CorrectAnswer string `json:"correct_answer"`
}

// ExamResponse is the staff view of an exam definition, answer keys included.
type ExamResponse struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	Subject          string                 `json:"subject"`
	TargetClass      string                 `json:"target_class"`
	Term             string                 `json:"term"`
	Session          string                 `json:"session"`
	Duration         int                    `json:"duration"`
	StartTime        time.Time              `json:"start_time"`
	EndTime          time.Time              `json:"end_time"`
	SEBRequired      bool                   `json:"seb_required"`
	ShuffleQuestions bool                   `json:"shuffle_questions"`
	AllowBacktrack   bool                   `json:"allow_backtrack"`
	PassPercentage   int                    `json:"pass_percentage"`
	Status           string                 `json:"status"`
	TotalMarks       int                    `json:"total_marks"`
	CreatedBy        string                 `json:"created_by"`
	Questions        []ExamQuestionResponse `json:"questions,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

// ExamSummary is what a student sees when listing exams for their class.
type ExamSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Duration    int       `json:"duration"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	SEBRequired bool      `json:"seb_required"`
	TotalMarks  int       `json:"total_marks"`
}
