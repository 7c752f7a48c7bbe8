package service

import (
	"context"
	"errors"

	"github.com/internmatch/internmatch-api/internal/core"
	"github.com/internmatch/internmatch-api/internal/data"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// SavedServiceOptions groups dependencies for SavedService.
type SavedServiceOptions struct {
	Saved       core.SavedInternshipRepository
	Internships core.InternshipRepository
}

// SavedService manages a student's saved-internships tab.
type SavedService struct {
	saved       core.SavedInternshipRepository
	internships core.InternshipRepository
}

// NewSavedService constructs a new SavedService.
func NewSavedService(opts SavedServiceOptions) *SavedService {
	return &SavedService{saved: opts.Saved, internships: opts.Internships}
}

// Toggle saves or unsaves the internship for the student and returns the
// resulting saved state.
func (s *SavedService) Toggle(ctx context.Context, studentID, internshipID string) (bool, error) {
	if _, err := s.internships.GetByID(ctx, internshipID); err != nil {
		if errors.Is(err, data.ErrInternshipNotFound) {
			return false, apperrors.NotFound("Internship not found.")
		}
		return false, err
	}
	return s.saved.Toggle(ctx, studentID, internshipID)
}

// List retrieves the student's saved internships as listing cards.
func (s *SavedService) List(ctx context.Context, studentID string) ([]*model.InternshipCard, error) {
	return s.saved.ListSaved(ctx, studentID)
}
