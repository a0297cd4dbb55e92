package service

import (
	"context"

	"github.com/lshigami/cbtengine/internal/clearance"
	"github.com/lshigami/cbtengine/internal/repository"
)

// EligibilityGate answers the two per-student questions asked before a sitting.
type EligibilityGate interface {
	IsCleared(ctx context.Context, studentID string) (bool, error)
	HasSubmitted(ctx context.Context, studentID, examID string) (bool, error)
}

type eligibilityGate struct {
	clearance clearance.Lookup
	results   repository.ExamResultRepository
}

func NewEligibilityGate(lookup clearance.Lookup, results repository.ExamResultRepository) EligibilityGate {
	return &eligibilityGate{clearance: lookup, results: results}
}

func (g *eligibilityGate) IsCleared(ctx context.Context, studentID string) (bool, error) {
	return g.clearance.IsCleared(ctx, studentID)
}

func (g *eligibilityGate) HasSubmitted(ctx context.Context, studentID, examID string) (bool, error) {
	return g.results.Exists(ctx, studentID, examID)
}
