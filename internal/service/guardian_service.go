package service

import (
	"context"
	"fmt"

	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/repository"
	"github.com/rs/zerolog/log"
)

// GuardianService serves results to guardians linked to the student.
type GuardianService interface {
	GetChildResult(ctx context.Context, guardianID, studentID, examID string) (*dto.ExamResultResponse, error)
}

type guardianService struct {
	guardianRepo repository.GuardianRepository
	sessions     ExamSessionService
}

func NewGuardianService(guardianRepo repository.GuardianRepository, sessions ExamSessionService) GuardianService {
	return &guardianService{guardianRepo: guardianRepo, sessions: sessions}
}

func (s *guardianService) GetChildResult(ctx context.Context, guardianID, studentID, examID string) (*dto.ExamResultResponse, error) {
	linked, err := s.guardianRepo.IsLinked(ctx, guardianID, studentID)
	if err != nil {
		return nil, fmt.Errorf("checking guardian link: %w", err)
	}
	if !linked {
		log.Warn().Str("guardianID", guardianID).Str("studentID", studentID).Msg("Guardian not linked to student")
		return nil, apperr.New(apperr.Forbidden, "not a guardian of this student")
	}
	return s.sessions.GetResult(ctx, studentID, examID)
}
