package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/cbtengine/config"
	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/model"
	"github.com/lshigami/cbtengine/internal/repository"
	"github.com/rs/zerolog/log"
)

// ExamSessionService drives a student's sitting: starting the exam, submitting
// answers, and reading back the stored result.
type ExamSessionService interface {
	StartExam(ctx context.Context, studentID, examID, userAgent string, now time.Time) (*dto.ExamStartResponse, error)
	SubmitExam(ctx context.Context, studentID, examID string, answers []dto.SubmittedAnswer, now time.Time) (*dto.SubmitExamResponse, error)
	GetResult(ctx context.Context, studentID, examID string) (*dto.ExamResultResponse, error)
	ListResults(ctx context.Context, examID string) ([]dto.ExamResultResponse, error)
}

type examSessionService struct {
	examRepo    repository.ExamRepository
	resultRepo  repository.ExamResultRepository
	gate        EligibilityGate
	sebToken    string
	gracePeriod time.Duration
	intn        func(n int) int
}

func NewExamSessionService(
	examRepo repository.ExamRepository,
	resultRepo repository.ExamResultRepository,
	gate EligibilityGate,
	cfg *config.Config,
) ExamSessionService {
	sebToken := cfg.Exam.SEBToken
	if sebToken == "" {
		sebToken = "SEB"
	}
	grace := cfg.Exam.GracePeriod
	if grace <= 0 {
		grace = 2 * time.Minute
	}
	return &examSessionService{
		examRepo:    examRepo,
		resultRepo:  resultRepo,
		gate:        gate,
		sebToken:    sebToken,
		gracePeriod: grace,
		intn:        randomIntn,
	}
}

// StartExam authorizes a sitting and returns the answer-free paper. The checks run
// in a fixed order because each failure is reported differently to the client.
// Nothing is written, so a client may call it again after a failed load.
func (s *examSessionService) StartExam(ctx context.Context, studentID, examID, userAgent string, now time.Time) (*dto.ExamStartResponse, error) {
	cleared, err := s.gate.IsCleared(ctx, studentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID).Msg("StartExam: clearance lookup failed")
		return nil, fmt.Errorf("resolving clearance for student %s: %w", studentID, err)
	}
	if !cleared {
		return nil, apperr.New(apperr.NotClearedForExams, "student is not cleared to sit exams")
	}

	exam, err := s.loadExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	if now.Before(exam.StartTime) {
		return nil, apperr.New(apperr.ExamNotYetOpen, fmt.Sprintf("exam opens at %s", exam.StartTime.UTC().Format(time.RFC3339)))
	}
	if now.After(exam.EndTime) {
		return nil, apperr.New(apperr.ExamAlreadyClosed, fmt.Sprintf("exam closed at %s", exam.EndTime.UTC().Format(time.RFC3339)))
	}

	submitted, err := s.gate.HasSubmitted(ctx, studentID, examID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID).Str("examID", examID).Msg("StartExam: result lookup failed")
		return nil, fmt.Errorf("checking previous submission: %w", err)
	}
	if submitted {
		return nil, apperr.New(apperr.AlreadySubmitted, "exam already submitted")
	}

	if exam.SEBRequired && !strings.Contains(userAgent, s.sebToken) {
		return nil, apperr.New(apperr.SEBRequired, "exam must be taken in the locked exam browser")
	}

	questions := make([]dto.SessionQuestion, 0, len(exam.Questions))
	for _, link := range exam.Questions {
		questions = append(questions, redactQuestion(link))
	}
	if exam.ShuffleQuestions {
		shuffleInPlace(questions, s.intn)
	}

	log.Info().Str("studentID", studentID).Str("examID", examID).Int("questions", len(questions)).Msg("Exam session started")
	return &dto.ExamStartResponse{
		ExamID:         exam.ID,
		Title:          exam.Title,
		Duration:       exam.Duration,
		EndTime:        exam.EndTime,
		AllowBacktrack: exam.AllowBacktrack,
		Questions:      questions,
	}, nil
}

// SubmitExam grades and stores a sitting. Uniqueness of (student, exam) is left to
// the store: the insert itself is the at-most-once decision.
func (s *examSessionService) SubmitExam(ctx context.Context, studentID, examID string, answers []dto.SubmittedAnswer, now time.Time) (*dto.SubmitExamResponse, error) {
	exam, err := s.loadExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	deadline := exam.EndTime.Add(s.gracePeriod)
	if now.After(deadline) {
		return nil, apperr.New(apperr.TimeExpired, fmt.Sprintf("submission deadline was %s", deadline.UTC().Format(time.RFC3339)))
	}

	grading, err := GradeSubmission(exam.Questions, answers, exam.PassPercentage)
	if err != nil {
		log.Error().Err(err).Str("examID", examID).Msg("SubmitExam: exam cannot be graded")
		return nil, err
	}

	result := model.ExamAttemptResult{
		StudentID:     studentID,
		ExamID:        examID,
		Score:         grading.Score,
		TotalPossible: grading.TotalPossible,
		Percentage:    grading.Percentage,
		Status:        grading.Status,
		Answers:       grading.Answers,
		SubmittedAt:   now,
	}
	if err := s.resultRepo.Create(ctx, &result); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Warn().Str("studentID", studentID).Str("examID", examID).Msg("SubmitExam: duplicate submission rejected")
			return nil, apperr.New(apperr.AlreadySubmitted, "exam already submitted")
		}
		log.Error().Err(err).Str("studentID", studentID).Str("examID", examID).Msg("SubmitExam: failed to store result")
		return nil, fmt.Errorf("storing result: %w", err)
	}

	log.Info().
		Str("studentID", studentID).
		Str("examID", examID).
		Int("score", grading.Score).
		Int("percentage", grading.Percentage).
		Msg("Exam submitted")
	return &dto.SubmitExamResponse{
		Score:         grading.Score,
		TotalPossible: grading.TotalPossible,
		Percentage:    grading.Percentage,
		Status:        string(grading.Status),
	}, nil
}

func (s *examSessionService) GetResult(ctx context.Context, studentID, examID string) (*dto.ExamResultResponse, error) {
	result, err := s.resultRepo.FindByStudentAndExam(ctx, studentID, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.ResultNotFound, "no result for this exam")
		}
		return nil, fmt.Errorf("loading result: %w", err)
	}
	return toResultResponse(result), nil
}

func (s *examSessionService) ListResults(ctx context.Context, examID string) ([]dto.ExamResultResponse, error) {
	if _, err := s.loadExam(ctx, examID); err != nil {
		return nil, err
	}
	results, err := s.resultRepo.FindAllByExam(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	resp := make([]dto.ExamResultResponse, 0, len(results))
	for i := range results {
		resp = append(resp, *toResultResponse(&results[i]))
	}
	return resp, nil
}

func (s *examSessionService) loadExam(ctx context.Context, examID string) (*model.ExamDefinition, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.ExamNotFound, fmt.Sprintf("exam %s not found", examID))
		}
		log.Error().Err(err).Str("examID", examID).Msg("Failed to load exam")
		return nil, fmt.Errorf("loading exam %s: %w", examID, err)
	}
	return exam, nil
}

// redactQuestion builds the student view of a linked question. Only fields that
// are safe to show are copied; the key and explanation never leave the server.
func redactQuestion(link model.ExamQuestion) dto.SessionQuestion {
	q := dto.SessionQuestion{
		ID:       link.QuestionID,
		Stem:     link.Question.Stem,
		ImageURL: link.Question.ImageURL,
		Type:     string(link.Question.Type),
		Options:  make([]dto.OptionDTO, 0, len(link.Question.Options)),
		Marks:    model.EffectiveMarks(link.Marks),
	}
	for _, opt := range link.Question.Options {
		q.Options = append(q.Options, dto.OptionDTO{Label: opt.Label, Text: opt.Text})
	}
	return q
}

func toResultResponse(result *model.ExamAttemptResult) *dto.ExamResultResponse {
	var resp dto.ExamResultResponse
	copier.Copy(&resp, result)
	resp.Status = string(result.Status)
	resp.Answers = make([]dto.GradedAnswerResponse, 0, len(result.Answers))
	for _, a := range result.Answers {
		resp.Answers = append(resp.Answers, dto.GradedAnswerResponse(a))
	}
	return &resp
}
