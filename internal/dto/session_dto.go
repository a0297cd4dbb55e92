package dto

import "time"

// SessionQuestion is a question as served to a sitting student. It never carries
// the answer key or the explanation.
type SessionQuestion struct {
	ID       string      `json:"id"`
	Stem     string      `json:"stem"`
	ImageURL *string     `json:"image_url,omitempty"`
	Type     string      `json:"type"`
	Options  []OptionDTO `json:"options"`
	Marks    int         `json:"marks"`
}

type ExamStartResponse struct {
	ExamID         string            `json:"exam_id"`
	Title          string            `json:"title"`
	Duration       int               `json:"duration"`
	EndTime        time.Time         `json:"end_time"`
	AllowBacktrack bool              `json:"allow_backtrack"`
	Questions      []SessionQuestion `json:"questions"`
}

type SubmittedAnswer struct {
	QuestionID     string `json:"questionId" binding:"required"`
	SelectedOption string `json:"selectedOption"`
}

type SubmitExamRequest struct {
	Answers []SubmittedAnswer `json:"answers" binding:"omitempty,dive"`
}

type SubmitExamResponse struct {
	Score         int    `json:"score"`
	TotalPossible int    `json:"totalPossible"`
	Percentage    int    `json:"percentage"`
	Status        string `json:"status"`
}

type GradedAnswerResponse struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
	IsCorrect      bool   `json:"isCorrect"`
	MarksEarned    int    `json:"marksEarned"`
}

type ExamResultResponse struct {
	ID            string                 `json:"id"`
	StudentID     string                 `json:"student_id"`
	ExamID        string                 `json:"exam_id"`
	Score         int                    `json:"score"`
	TotalPossible int                    `json:"total_possible"`
	Percentage    int                    `json:"percentage"`
	Status        string                 `json:"status"`
	Answers       []GradedAnswerResponse `json:"answers"`
	SubmittedAt   time.Time              `json:"submitted_at"`
}
