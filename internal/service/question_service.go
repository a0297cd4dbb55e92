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

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, creatorID string) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error)
	GetAllQuestions(ctx context.Context, subject, difficulty string) ([]dto.QuestionResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, creatorID string) (*dto.QuestionResponse, error) {
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	question := model.QuestionBankItem{}
	copier.Copy(&question, &req)
	question.Type = model.QuestionType(req.Type)
	question.Difficulty = model.Difficulty(req.Difficulty)
	if question.Difficulty == "" {
		question.Difficulty = model.DifficultyMedium
	}
	question.Marks = model.EffectiveMarks(req.Marks)
	question.CreatedBy = creatorID
	question.Options = make([]model.Option, 0, len(req.Options))
	for _, opt := range req.Options {
		question.Options = append(question.Options, model.Option{Label: opt.Label, Text: opt.Text})
	}

	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Str("subject", req.Subject).Msg("Failed to create question in service")
		return nil, fmt.Errorf("storing question: %w", err)
	}
	return toQuestionResponse(&question), nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.QuestionNotFound, fmt.Sprintf("question %s not found", id))
		}
		return nil, fmt.Errorf("loading question %s: %w", id, err)
	}
	return toQuestionResponse(question), nil
}

func (s *questionService) GetAllQuestions(ctx context.Context, subject, difficulty string) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll(ctx, subject, model.Difficulty(difficulty))
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, *toQuestionResponse(&questions[i]))
	}
	return resp, nil
}

func validateQuestion(req dto.CreateQuestionRequest) error {
	if model.QuestionType(req.Type) != model.QuestionTypeMultipleChoice {
		return nil
	}
	if len(req.Options) < 2 {
		return apperr.New(apperr.InvalidInput, "multiple-choice questions need at least two options")
	}
	labels := make(map[string]bool, len(req.Options))
	for _, opt := range req.Options {
		if labels[opt.Label] {
			return apperr.New(apperr.InvalidInput, fmt.Sprintf("option %s is repeated", opt.Label))
		}
		labels[opt.Label] = true
	}
	if !labels[req.CorrectAnswer] {
		return apperr.New(apperr.InvalidInput, "correct_answer must name one of the options")
	}
	return nil
}

func toQuestionResponse(q *model.QuestionBankItem) *dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, q)
	resp.Type = string(q.Type)
	resp.Difficulty = string(q.Difficulty)
	resp.Options = make([]dto.OptionDTO, 0, len(q.Options))
	for _, opt := range q.Options {
		resp.Options = append(resp.Options, dto.OptionDTO{Label: opt.Label, Text: opt.Text})
	}
	return &resp
}
