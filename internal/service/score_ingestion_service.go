package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/model"
	"github.com/lshigami/cbtengine/internal/repository"
	"github.com/rs/zerolog/log"
)

// ScoreIngestionService loads CA and exam scores for a class into the gradebook.
type ScoreIngestionService interface {
	BulkIngestScores(ctx context.Context, teacherID string, req dto.BulkScoreRequest) (*dto.BulkScoreResponse, error)
	ListScores(ctx context.Context, className, term, session string) ([]dto.ScoreRowResponse, error)
}

type scoreIngestionService struct {
	scoreRepo      repository.ScoreRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewScoreIngestionService(scoreRepo repository.ScoreRepository, enrollmentRepo repository.EnrollmentRepository) ScoreIngestionService {
	return &scoreIngestionService{scoreRepo: scoreRepo, enrollmentRepo: enrollmentRepo}
}

// BulkIngestScores validates class membership and key uniqueness for the whole
// batch before writing anything, then upserts every row in one transaction.
func (s *scoreIngestionService) BulkIngestScores(ctx context.Context, teacherID string, req dto.BulkScoreRequest) (*dto.BulkScoreResponse, error) {
	if len(req.Entries) == 0 {
		return nil, apperr.New(apperr.InvalidInput, "batch has no entries")
	}

	ids := make([]string, 0, len(req.Entries))
	seen := make(map[string]bool, len(req.Entries))
	for _, e := range req.Entries {
		if !seen[e.StudentID] {
			seen[e.StudentID] = true
			ids = append(ids, e.StudentID)
		}
	}

	members, err := s.enrollmentRepo.FilterMembers(ctx, req.ClassName, ids)
	if err != nil {
		log.Error().Err(err).Str("class", req.ClassName).Msg("BulkIngestScores: membership lookup failed")
		return nil, fmt.Errorf("checking class membership: %w", err)
	}
	enrolled := make(map[string]bool, len(members))
	for _, id := range members {
		enrolled[id] = true
	}

	invalid := 0
	for _, e := range req.Entries {
		if !enrolled[e.StudentID] {
			invalid++
		}
	}
	if invalid > 0 {
		log.Warn().Str("class", req.ClassName).Int("invalid", invalid).Msg("BulkIngestScores: batch rejected")
		return nil, apperr.InvalidEntries(apperr.StudentsNotInClass, invalid,
			fmt.Sprintf("%d entries reference students not enrolled in %s", invalid, req.ClassName))
	}

	keys := make(map[[4]string]bool, len(req.Entries))
	repeated := 0
	for _, e := range req.Entries {
		key := [4]string{e.StudentID, e.Subject, e.Term, e.Session}
		if keys[key] {
			repeated++
		}
		keys[key] = true
	}
	if repeated > 0 {
		log.Warn().Str("class", req.ClassName).Int("repeated", repeated).Msg("BulkIngestScores: batch repeats score keys")
		return nil, apperr.InvalidEntries(apperr.InvalidInput, repeated,
			fmt.Sprintf("%d entries repeat a student, subject, term and session already in the batch", repeated))
	}

	rows := make([]model.ScoreRow, 0, len(req.Entries))
	for _, e := range req.Entries {
		total := e.CAScore + e.ExamScore
		grade, remark := GradeFor(total)
		rows = append(rows, model.ScoreRow{
			StudentID:   e.StudentID,
			Subject:     e.Subject,
			Term:        e.Term,
			Session:     e.Session,
			CAScore:     e.CAScore,
			ExamScore:   e.ExamScore,
			TotalScore:  total,
			Grade:       grade,
			Remark:      remark,
			ClassAtTime: req.ClassName,
			TeacherID:   teacherID,
		})
	}

	if err := s.scoreRepo.UpsertBatch(ctx, rows); err != nil {
		log.Error().Err(err).Str("class", req.ClassName).Int("rows", len(rows)).Msg("BulkIngestScores: transaction rolled back")
		return nil, apperr.Wrap(apperr.IngestionFailed, "score batch was not saved", err)
	}

	log.Info().Str("class", req.ClassName).Str("teacherID", teacherID).Int("rows", len(rows)).Msg("Scores ingested")
	return &dto.BulkScoreResponse{Count: len(rows)}, nil
}

func (s *scoreIngestionService) ListScores(ctx context.Context, className, term, session string) ([]dto.ScoreRowResponse, error) {
	rows, err := s.scoreRepo.FindByClassTermSession(ctx, className, term, session)
	if err != nil {
		return nil, fmt.Errorf("listing scores: %w", err)
	}
	resp := []dto.ScoreRowResponse{}
	if err := copier.Copy(&resp, &rows); err != nil {
		return nil, fmt.Errorf("mapping scores: %w", err)
	}
	return resp, nil
}
