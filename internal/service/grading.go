package service

import (
	"math"

	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/model"
)

// Grading is the outcome of scoring one submission against an exam's answer keys.
type Grading struct {
	Score         int
	TotalPossible int
	Percentage    int
	Status        model.ResultStatus
	Answers       []model.GradedAnswer
}

// GradeSubmission scores answers against the exam's linked questions. It reads no
// clock and no randomness, so identical inputs always produce identical output.
// An exam whose questions carry no marks at all is reported as ExamHasNoMarks.
func GradeSubmission(questions []model.ExamQuestion, answers []dto.SubmittedAnswer, passPercentage int) (*Grading, error) {
	selected := make(map[string]string, len(answers))
	for _, a := range answers {
		if _, seen := selected[a.QuestionID]; !seen {
			selected[a.QuestionID] = a.SelectedOption
		}
	}

	g := &Grading{Answers: make([]model.GradedAnswer, 0, len(questions))}
	for _, q := range questions {
		marks := model.EffectiveMarks(q.Marks)
		option, ok := selected[q.QuestionID]
		if !ok || option == "" {
			option = model.NoAnswer
		}

		correct := option != model.NoAnswer && option == q.CorrectAnswer
		earned := 0
		if correct {
			earned = marks
		}

		g.Score += earned
		g.TotalPossible += marks
		g.Answers = append(g.Answers, model.GradedAnswer{
			QuestionID:     q.QuestionID,
			SelectedOption: option,
			IsCorrect:      correct,
			MarksEarned:    earned,
		})
	}

	if g.TotalPossible == 0 {
		return nil, apperr.New(apperr.ExamHasNoMarks, "exam has no gradable questions")
	}

	g.Percentage = int(math.Round(float64(g.Score) / float64(g.TotalPossible) * 100))
	g.Status = model.ResultStatusFail
	if g.Percentage >= passPercentage {
		g.Status = model.ResultStatusPass
	}
	return g, nil
}
