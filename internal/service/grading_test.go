package service

import (
	"testing"

	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestionPaper() []model.ExamQuestion {
	return []model.ExamQuestion{
		{QuestionID: "q1", Position: 1, Marks: 2, CorrectAnswer: "A"},
		{QuestionID: "q2", Position: 2, Marks: 2, CorrectAnswer: "C"},
	}
}

func TestGradeSubmission_HalfMarksPassesAtFifty(t *testing.T) {
	answers := []dto.SubmittedAnswer{
		{QuestionID: "q1", SelectedOption: "A"},
		{QuestionID: "q2", SelectedOption: "B"},
	}

	g, err := GradeSubmission(twoQuestionPaper(), answers, 50)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Score)
	assert.Equal(t, 4, g.TotalPossible)
	assert.Equal(t, 50, g.Percentage)
	assert.Equal(t, model.ResultStatusPass, g.Status)
	assert.Equal(t, []model.GradedAnswer{
		{QuestionID: "q1", SelectedOption: "A", IsCorrect: true, MarksEarned: 2},
		{QuestionID: "q2", SelectedOption: "B", IsCorrect: false, MarksEarned: 0},
	}, g.Answers)
}

func TestGradeSubmission_MissingAnswerRecordedAsNone(t *testing.T) {
	g, err := GradeSubmission(twoQuestionPaper(), []dto.SubmittedAnswer{{QuestionID: "q2", SelectedOption: "C"}}, 60)
	require.NoError(t, err)

	assert.Equal(t, model.NoAnswer, g.Answers[0].SelectedOption)
	assert.False(t, g.Answers[0].IsCorrect)
	assert.Equal(t, 50, g.Percentage)
	assert.Equal(t, model.ResultStatusFail, g.Status)
}

func TestGradeSubmission_CaseSensitive(t *testing.T) {
	g, err := GradeSubmission(twoQuestionPaper(), []dto.SubmittedAnswer{{QuestionID: "q1", SelectedOption: "a"}}, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Score)
}

func TestGradeSubmission_DefaultMarksAndRounding(t *testing.T) {
	questions := []model.ExamQuestion{
		{QuestionID: "q1", Marks: 0, CorrectAnswer: "A"},
		{QuestionID: "q2", Marks: 1, CorrectAnswer: "B"},
		{QuestionID: "q3", Marks: 0, CorrectAnswer: "C"},
	}
	g, err := GradeSubmission(questions, []dto.SubmittedAnswer{{QuestionID: "q1", SelectedOption: "A"}}, 40)
	require.NoError(t, err)

	assert.Equal(t, 5, g.TotalPossible)
	assert.Equal(t, 2, g.Score)
	assert.Equal(t, 40, g.Percentage)
	assert.Equal(t, model.ResultStatusPass, g.Status)
}

func TestGradeSubmission_IgnoresAnswersForUnlinkedQuestions(t *testing.T) {
	answers := []dto.SubmittedAnswer{
		{QuestionID: "q1", SelectedOption: "A"},
		{QuestionID: "q1", SelectedOption: "B"},
		{QuestionID: "other", SelectedOption: "A"},
	}
	g, err := GradeSubmission(twoQuestionPaper(), answers, 50)
	require.NoError(t, err)

	assert.Len(t, g.Answers, 2)
	assert.Equal(t, 2, g.Score)
}

func TestGradeSubmission_NoQuestionsIsConfigurationError(t *testing.T) {
	_, err := GradeSubmission(nil, nil, 50)
	require.Error(t, err)
	assert.Equal(t, apperr.ExamHasNoMarks, apperr.ReasonOf(err))
}

func TestGradeSubmission_Deterministic(t *testing.T) {
	answers := []dto.SubmittedAnswer{{QuestionID: "q2", SelectedOption: "C"}}
	first, err := GradeSubmission(twoQuestionPaper(), answers, 50)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := GradeSubmission(twoQuestionPaper(), answers, 50)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		total  float64
		grade  string
		remark string
	}{
		{100, "A1", "Distinction"},
		{90, "A1", "Distinction"},
		{89.5, "B2", "Very Good"},
		{75, "B2", "Very Good"},
		{60, "C4", "Good"},
		{50, "C6", "Pass"},
		{49.9, "F9", "Still Learning"},
		{0, "F9", "Still Learning"},
	}
	for _, tt := range tests {
		grade, remark := GradeFor(tt.total)
		assert.Equal(t, tt.grade, grade, "total %v", tt.total)
		assert.Equal(t, tt.remark, remark, "total %v", tt.total)
	}
}
