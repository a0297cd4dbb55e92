package dto

import "time"

type OptionDTO struct {
	Label string `json:"label" binding:"required,oneof=A B C D E"`
	Text  string `json:"text" binding:"required"`
}

// CreateQuestionRequest adds an item to the question bank.
type CreateQuestionRequest struct {
	Stem          string      `json:"stem" binding:"required"`
	ImageURL      *string     `json:"image_url"`
	Type          string      `json:"type" binding:"required,oneof=multiple-choice theory"`
	Options       []OptionDTO `json:"options" binding:"omitempty,max=5,dive"`
	CorrectAnswer string      `json:"correct_answer" binding:"omitempty,oneof=A B C D E"`
	Explanation   string      `json:"explanation"`
	Marks         int         `json:"marks" binding:"omitempty,min=1"`
	Subject       string      `json:"subject" binding:"required"`
	Difficulty    string      `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

type QuestionResponse struct {
	ID            string      `json:"id"`
	Stem          string      `json:"stem"`
	ImageURL      *string     `json:"image_url,omitempty"`
	Type          string      `json:"type"`
	Options       []OptionDTO `json:"options"`
	CorrectAnswer string      `json:"correct_answer,omitempty"`
	Explanation   string      `json:"explanation,omitempty"`
	Marks         int         `json:"marks"`
	Subject       string      `json:"subject"`
	Difficulty    string      `json:"difficulty"`
	CreatedBy     string      `json:"created_by"`
	CreatedAt     time.Time   `json:"created_at"`
}
