package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/lshigami/cbtengine/config"
	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// BroadsheetService ranks a class on its term scores and annotates the gradebook.
type BroadsheetService interface {
	CompileBroadsheet(ctx context.Context, className, term, session string) (*dto.BroadsheetResponse, error)
}

type broadsheetService struct {
	scoreRepo   repository.ScoreRepository
	concurrency int
}

func NewBroadsheetService(scoreRepo repository.ScoreRepository, cfg *config.Config) BroadsheetService {
	concurrency := cfg.Broadsheet.WriteConcurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	return &broadsheetService{scoreRepo: scoreRepo, concurrency: concurrency}
}

// CompileBroadsheet averages each student's subject totals, ranks by average
// (ties broken by student ID) and writes position and averages back to every row.
// The write-back is a set of idempotent updates; re-running repairs any interleaving
// with a concurrent ingestion.
func (s *broadsheetService) CompileBroadsheet(ctx context.Context, className, term, session string) (*dto.BroadsheetResponse, error) {
	rows, err := s.scoreRepo.FindByClassTermSession(ctx, className, term, session)
	if err != nil {
		log.Error().Err(err).Str("class", className).Msg("CompileBroadsheet: failed to load scores")
		return nil, fmt.Errorf("loading scores: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperr.New(apperr.NoResultsForCriteria, fmt.Sprintf("no scores for %s, %s %s", className, term, session))
	}

	byStudent := make(map[string]*dto.RankedStudent)
	for _, row := range rows {
		st, ok := byStudent[row.StudentID]
		if !ok {
			st = &dto.RankedStudent{StudentID: row.StudentID}
			byStudent[row.StudentID] = st
		}
		st.Total += row.TotalScore
		st.Subjects++
	}

	students := make([]dto.RankedStudent, 0, len(byStudent))
	for _, st := range byStudent {
		st.Average = roundTo1(st.Total / float64(st.Subjects))
		students = append(students, *st)
	}
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].Average != students[j].Average {
			return students[i].Average > students[j].Average
		}
		return students[i].StudentID < students[j].StudentID
	})

	var sum float64
	for i := range students {
		students[i].Position = i + 1
		students[i].PositionText = Ordinal(i + 1)
		sum += students[i].Average
	}
	classAverage := roundTo1(sum / float64(len(students)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, st := range students {
		update := repository.RankingUpdate{
			StudentID:       st.StudentID,
			Term:            term,
			Session:         session,
			PositionInClass: st.PositionText,
			StudentAverage:  st.Average,
			ClassAverage:    classAverage,
		}
		g.Go(func() error {
			if err := s.scoreRepo.UpdateRanking(gctx, update); err != nil {
				return fmt.Errorf("writing rank for %s: %w", update.StudentID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("class", className).Msg("CompileBroadsheet: write-back incomplete")
		return nil, err
	}

	log.Info().Str("class", className).Str("term", term).Str("session", session).Int("students", len(students)).Msg("Broadsheet compiled")
	return &dto.BroadsheetResponse{
		ClassName:    className,
		Term:         term,
		Session:      session,
		ClassAverage: classAverage,
		Students:     students,
	}, nil
}

// Ordinal renders n as 1st, 2nd, 3rd, 4th ... with 11th, 12th and 13th.
func Ordinal(n int) string {
	suffix := "th"
	if mod100 := n % 100; mod100 < 11 || mod100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
