package service

import (
	"context"
	"fmt"

	"github.com/lshigami/cbtengine/internal/repository"
	"github.com/rs/zerolog/log"
)

// ClearanceInvalidator drops any cached clearance answer for a student.
type ClearanceInvalidator interface {
	Invalidate(ctx context.Context, studentID string) error
}

// RosterService is the administrative entry point for the lookups the exam engine
// reads but does not own: class enrollment, finance clearance and guardian links.
type RosterService interface {
	Enroll(ctx context.Context, studentID, className string) error
	SetClearance(ctx context.Context, studentID string, cleared bool) error
	LinkGuardian(ctx context.Context, guardianID, studentID string) error
}

type rosterService struct {
	enrollmentRepo repository.EnrollmentRepository
	clearanceRepo  repository.ClearanceRepository
	guardianRepo   repository.GuardianRepository
	cache          ClearanceInvalidator
}

func NewRosterService(
	enrollmentRepo repository.EnrollmentRepository,
	clearanceRepo repository.ClearanceRepository,
	guardianRepo repository.GuardianRepository,
	cache ClearanceInvalidator,
) RosterService {
	return &rosterService{
		enrollmentRepo: enrollmentRepo,
		clearanceRepo:  clearanceRepo,
		guardianRepo:   guardianRepo,
		cache:          cache,
	}
}

func (s *rosterService) Enroll(ctx context.Context, studentID, className string) error {
	if err := s.enrollmentRepo.Enroll(ctx, studentID, className); err != nil {
		return fmt.Errorf("enrolling %s in %s: %w", studentID, className, err)
	}
	log.Info().Str("studentID", studentID).Str("class", className).Msg("Student enrolled")
	return nil
}

// SetClearance records the flag and evicts the cached answer. A failed eviction is
// logged; the cached value then expires on its own TTL.
func (s *rosterService) SetClearance(ctx context.Context, studentID string, cleared bool) error {
	if err := s.clearanceRepo.Set(ctx, studentID, cleared); err != nil {
		return fmt.Errorf("setting clearance for %s: %w", studentID, err)
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, studentID); err != nil {
			log.Warn().Err(err).Str("studentID", studentID).Msg("Clearance cache eviction failed")
		}
	}
	log.Info().Str("studentID", studentID).Bool("cleared", cleared).Msg("Clearance updated")
	return nil
}

func (s *rosterService) LinkGuardian(ctx context.Context, guardianID, studentID string) error {
	if err := s.guardianRepo.Link(ctx, guardianID, studentID); err != nil {
		return fmt.Errorf("linking guardian %s to %s: %w", guardianID, studentID, err)
	}
	log.Info().Str("guardianID", guardianID).Str("studentID", studentID).Msg("Guardian linked")
	return nil
}
