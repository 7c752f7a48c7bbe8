package service

import (
	"context"
	"errors"

	"github.com/internmatch/internmatch-api/internal/core"
	"github.com/internmatch/internmatch-api/internal/data"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// ModerationServiceOptions groups dependencies for ModerationService.
type ModerationServiceOptions struct {
	Internships core.InternshipRepository
	Companies   core.CompanyRepository
}

// ModerationService covers the admin review queue: internship decisions are
// one-way, company approval is a reversible flag.
type ModerationService struct {
	internships core.InternshipRepository
	companies   core.CompanyRepository
}

// NewModerationService constructs a new ModerationService.
func NewModerationService(opts ModerationServiceOptions) *ModerationService {
	return &ModerationService{internships: opts.Internships, companies: opts.Companies}
}

// PendingQueue holds everything awaiting admin review.
type PendingQueue struct {
	Internships []*model.InternshipCard `json:"internships"`
	Companies   []*model.Company        `json:"companies"`
}

// ListPending retrieves pending internships and unapproved companies.
func (s *ModerationService) ListPending(ctx context.Context) (*PendingQueue, error) {
	internships, err := s.internships.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.companies.ListUnapproved(ctx)
	if err != nil {
		return nil, err
	}
	return &PendingQueue{Internships: internships, Companies: companies}, nil
}

// ModerationAction is an admin's decision on a pending internship.
type ModerationAction string

const (
	ModerationActionApprove ModerationAction = "approve"
	ModerationActionReject  ModerationAction = "reject"
)

// DecideInternship applies a one-way moderation decision. An internship that
// already left pending cannot be moved again.
func (s *ModerationService) DecideInternship(ctx context.Context, id string, action ModerationAction) (*model.Internship, error) {
	var status model.InternshipStatus
	switch action {
	case ModerationActionApprove:
		status = model.InternshipStatusApproved
	case ModerationActionReject:
		status = model.InternshipStatusRejected
	default:
		return nil, apperrors.ValidationField("action", "action must be approve or reject")
	}

	internship, err := s.internships.Decide(ctx, id, status)
	if err != nil {
		if errors.Is(err, data.ErrInternshipNotFound) {
			return nil, apperrors.NotFound("Internship not found.")
		}
		if errors.Is(err, data.ErrInternshipNotPending) {
			return nil, apperrors.Conflict("This internship has already been decided.")
		}
		return nil, err
	}
	return internship, nil
}

// SetCompanyApproval sets the reversible approved flag on a company.
func (s *ModerationService) SetCompanyApproval(ctx context.Context, id string, approved bool) (*model.Company, error) {
	company, err := s.companies.SetApproved(ctx, id, approved)
	if err != nil {
		if errors.Is(err, data.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company not found.")
		}
		return nil, err
	}
	return company, nil
}
