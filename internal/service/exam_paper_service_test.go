package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paperRequest(ids ...string) dto.CreateExamRequest {
	return dto.CreateExamRequest{
		Title:       "Basic Science",
		Subject:     "science",
		TargetClass: "JSS2B",
		Term:        "first",
		Session:     "2024/2025",
		Duration:    45,
		StartTime:   examStart,
		EndTime:     examEnd,
		QuestionIDs: ids,
	}
}

func newPaperService() (*examPaperService, *fakeExamRepo, *fakeQuestionRepo) {
	exams := newFakeExamRepo()
	questions := newFakeQuestionRepo(
		model.QuestionBankItem{ID: "q1", Marks: 3, CorrectAnswer: "B"},
		model.QuestionBankItem{ID: "q2", Marks: 0, CorrectAnswer: "D"},
		model.QuestionBankItem{ID: "q3", Marks: 5, CorrectAnswer: "A"},
	)
	enrollments := &fakeEnrollmentRepo{classes: map[string]string{"stu-1": "JSS2B"}}
	return NewExamPaperService(exams, questions, enrollments).(*examPaperService), exams, questions
}

func TestCreateExamPaper_SnapshotsValidSubset(t *testing.T) {
	svc, exams, questions := newPaperService()

	resp, err := svc.CreateExamPaper(context.Background(), paperRequest("q2", "ghost", "q1", "q2"), "teacher-1")
	require.NoError(t, err)

	assert.Equal(t, 5, resp.TotalMarks)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, 50, resp.PassPercentage)
	assert.True(t, resp.AllowBacktrack)
	assert.Equal(t, "teacher-1", resp.CreatedBy)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, dto.ExamQuestionResponse{QuestionID: "q2", Position: 1, Marks: 2, CorrectAnswer: "D"}, resp.Questions[0])
	assert.Equal(t, dto.ExamQuestionResponse{QuestionID: "q1", Position: 2, Marks: 3, CorrectAnswer: "B"}, resp.Questions[1])

	q1 := questions.questions["q1"]
	q1.Marks = 10
	q1.CorrectAnswer = "C"
	questions.questions["q1"] = q1

	stored, err := exams.FindByIDWithQuestions(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.TotalMarks)
	assert.Equal(t, "B", stored.Questions[1].CorrectAnswer)
}

func TestCreateExamPaper_NoValidQuestions(t *testing.T) {
	svc, exams, _ := newPaperService()

	_, err := svc.CreateExamPaper(context.Background(), paperRequest("ghost", "phantom"), "teacher-1")
	require.Error(t, err)
	assert.Equal(t, apperr.NoValidQuestionsProvided, apperr.ReasonOf(err))
	assert.Empty(t, exams.exams)
}

func TestCreateExamPaper_RejectsInvertedWindow(t *testing.T) {
	svc, _, _ := newPaperService()
	req := paperRequest("q1")
	req.EndTime = req.StartTime.Add(-time.Minute)

	_, err := svc.CreateExamPaper(context.Background(), req, "teacher-1")
	assert.Equal(t, apperr.InvalidInput, apperr.ReasonOf(err))
}

func TestCreateExamPaper_HonoursOverrides(t *testing.T) {
	svc, _, _ := newPaperService()
	req := paperRequest("q3")
	backtrack := false
	pass := 70
	req.AllowBacktrack = &backtrack
	req.PassPercentage = &pass
	req.Status = "published"

	resp, err := svc.CreateExamPaper(context.Background(), req, "teacher-1")
	require.NoError(t, err)
	assert.False(t, resp.AllowBacktrack)
	assert.Equal(t, 70, resp.PassPercentage)
	assert.Equal(t, "published", resp.Status)
}

func TestUpdateStatus_ForwardOnly(t *testing.T) {
	svc, _, _ := newPaperService()
	created, err := svc.CreateExamPaper(context.Background(), paperRequest("q1"), "teacher-1")
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(context.Background(), created.ID, model.ExamStatusPublished)
	require.NoError(t, err)
	assert.Equal(t, "published", resp.Status)

	_, err = svc.UpdateStatus(context.Background(), created.ID, model.ExamStatusDraft)
	assert.Equal(t, apperr.InvalidStatusTransition, apperr.ReasonOf(err))

	_, err = svc.UpdateStatus(context.Background(), "missing", model.ExamStatusClosed)
	assert.Equal(t, apperr.ExamNotFound, apperr.ReasonOf(err))
}

func TestListForClass_PublishedOnly(t *testing.T) {
	svc, _, _ := newPaperService()
	draft, err := svc.CreateExamPaper(context.Background(), paperRequest("q1"), "teacher-1")
	require.NoError(t, err)
	req := paperRequest("q3")
	req.Status = "published"
	published, err := svc.CreateExamPaper(context.Background(), req, "teacher-1")
	require.NoError(t, err)

	list, err := svc.ListForClass(context.Background(), "JSS2B")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, published.ID, list[0].ID)
	assert.NotEqual(t, draft.ID, list[0].ID)

	empty, err := svc.ListForClass(context.Background(), "SS3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestListForStudent_UsesCurrentClass(t *testing.T) {
	svc, _, _ := newPaperService()
	req := paperRequest("q1")
	req.Status = "published"
	created, err := svc.CreateExamPaper(context.Background(), req, "teacher-1")
	require.NoError(t, err)

	list, err := svc.ListForStudent(context.Background(), "stu-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	none, err := svc.ListForStudent(context.Background(), "unenrolled")
	require.NoError(t, err)
	assert.Empty(t, none)
}
