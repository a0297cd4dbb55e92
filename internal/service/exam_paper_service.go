package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/model"
	"github.com/lshigami/cbtengine/internal/repository"
	"github.com/rs/zerolog/log"
)

// ExamPaperService manages the exam catalog on the staff side.
type ExamPaperService interface {
	CreateExamPaper(ctx context.Context, req dto.CreateExamRequest, creatorID string) (*dto.ExamResponse, error)
	GetExam(ctx context.Context, examID string) (*dto.ExamResponse, error)
	ListForClass(ctx context.Context, className string) ([]dto.ExamSummary, error)
	ListForStudent(ctx context.Context, studentID string) ([]dto.ExamSummary, error)
	UpdateStatus(ctx context.Context, examID string, status model.ExamStatus) (*dto.ExamResponse, error)
}

type examPaperService struct {
	examRepo       repository.ExamRepository
	questionRepo   repository.QuestionRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewExamPaperService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	enrollmentRepo repository.EnrollmentRepository,
) ExamPaperService {
	return &examPaperService{examRepo: examRepo, questionRepo: questionRepo, enrollmentRepo: enrollmentRepo}
}

// CreateExamPaper links the requested bank items that exist, in request order, and
// freezes their marks and answer keys onto the exam. Unknown IDs are dropped.
func (s *examPaperService) CreateExamPaper(ctx context.Context, req dto.CreateExamRequest, creatorID string) (*dto.ExamResponse, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, apperr.New(apperr.InvalidInput, "end_time must be after start_time")
	}

	found, err := s.questionRepo.FindByIDs(ctx, req.QuestionIDs)
	if err != nil {
		log.Error().Err(err).Msg("CreateExamPaper: failed to resolve questions")
		return nil, fmt.Errorf("resolving questions: %w", err)
	}
	byID := make(map[string]model.QuestionBankItem, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}

	exam := model.ExamDefinition{
		Title:            req.Title,
		Subject:          req.Subject,
		TargetClass:      req.TargetClass,
		Term:             req.Term,
		Session:          req.Session,
		Duration:         req.Duration,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		SEBRequired:      req.SEBRequired,
		ShuffleQuestions: req.ShuffleQuestions,
		AllowBacktrack:   true,
		PassPercentage:   50,
		Status:           model.ExamStatusDraft,
		CreatedBy:        creatorID,
	}
	if req.AllowBacktrack != nil {
		exam.AllowBacktrack = *req.AllowBacktrack
	}
	if req.PassPercentage != nil {
		exam.PassPercentage = *req.PassPercentage
	}
	if req.Status != "" {
		exam.Status = model.ExamStatus(req.Status)
	}

	linked := make(map[string]bool, len(req.QuestionIDs))
	for _, id := range req.QuestionIDs {
		q, ok := byID[id]
		if !ok || linked[id] {
			continue
		}
		linked[id] = true
		marks := q.EffectiveMarks()
		exam.Questions = append(exam.Questions, model.ExamQuestion{
			QuestionID:    q.ID,
			Position:      len(exam.Questions) + 1,
			Marks:         marks,
			CorrectAnswer: q.CorrectAnswer,
		})
		exam.TotalMarks += marks
	}
	if len(exam.Questions) == 0 {
		return nil, apperr.New(apperr.NoValidQuestionsProvided, "none of the question ids exist in the bank")
	}
	if dropped := len(req.QuestionIDs) - len(exam.Questions); dropped > 0 {
		log.Warn().Int("dropped", dropped).Str("title", req.Title).Msg("CreateExamPaper: ignored unknown or repeated question ids")
	}

	if err := s.examRepo.Create(ctx, &exam); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateExamPaper: failed to store exam")
		return nil, fmt.Errorf("storing exam: %w", err)
	}

	log.Info().Str("examID", exam.ID).Int("questions", len(exam.Questions)).Int("totalMarks", exam.TotalMarks).Msg("Exam paper created")
	return toExamResponse(&exam), nil
}

func (s *examPaperService) GetExam(ctx context.Context, examID string) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(ctx, examID)
	if err != nil {
		return nil, examLookupError(examID, err)
	}
	return toExamResponse(exam), nil
}

// ListForClass returns the published exams for a class; drafts and closed papers
// stay hidden from students.
func (s *examPaperService) ListForClass(ctx context.Context, className string) ([]dto.ExamSummary, error) {
	exams, err := s.examRepo.FindByClass(ctx, className, model.ExamStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("listing exams for %s: %w", className, err)
	}
	var summaries []dto.ExamSummary
	if err := copier.Copy(&summaries, &exams); err != nil {
		return nil, fmt.Errorf("mapping exams: %w", err)
	}
	if summaries == nil {
		summaries = []dto.ExamSummary{}
	}
	return summaries, nil
}

// ListForStudent lists the published exams of the student's current class.
func (s *examPaperService) ListForStudent(ctx context.Context, studentID string) ([]dto.ExamSummary, error) {
	className, err := s.enrollmentRepo.ClassOf(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []dto.ExamSummary{}, nil
		}
		return nil, fmt.Errorf("resolving class for %s: %w", studentID, err)
	}
	return s.ListForClass(ctx, className)
}

// UpdateStatus moves an exam forward through draft, published and closed.
// Moving backwards is rejected.
func (s *examPaperService) UpdateStatus(ctx context.Context, examID string, status model.ExamStatus) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(ctx, examID)
	if err != nil {
		return nil, examLookupError(examID, err)
	}
	if exam.Status == status {
		return toExamResponse(exam), nil
	}
	if statusRank(status) < statusRank(exam.Status) {
		return nil, apperr.New(apperr.InvalidStatusTransition, fmt.Sprintf("cannot move exam from %s to %s", exam.Status, status))
	}
	if err := s.examRepo.UpdateStatus(ctx, examID, status); err != nil {
		return nil, examLookupError(examID, err)
	}
	exam.Status = status
	log.Info().Str("examID", examID).Str("status", string(status)).Msg("Exam status updated")
	return toExamResponse(exam), nil
}

func statusRank(status model.ExamStatus) int {
	switch status {
	case model.ExamStatusDraft:
		return 0
	case model.ExamStatusPublished:
		return 1
	case model.ExamStatusClosed:
		return 2
	}
	return -1
}

func examLookupError(examID string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.ExamNotFound, fmt.Sprintf("exam %s not found", examID))
	}
	return fmt.Errorf("loading exam %s: %w", examID, err)
}

func toExamResponse(exam *model.ExamDefinition) *dto.ExamResponse {
	var resp dto.ExamResponse
	copier.Copy(&resp, exam)
	resp.Status = string(exam.Status)
	resp.Questions = make([]dto.ExamQuestionResponse, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		resp.Questions = append(resp.Questions, dto.ExamQuestionResponse{
			QuestionID:    q.QuestionID,
			Position:      q.Position,
			Marks:         q.Marks,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return &resp
}
