package service

import (
	"context"
	"errors"

	"github.com/internmatch/internmatch-api/internal/core"
	"github.com/internmatch/internmatch-api/internal/data"
	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

const recommendedLimit = 10

// InternshipServiceOptions groups dependencies for InternshipService.
type InternshipServiceOptions struct {
	Internships core.InternshipRepository
	Companies   core.CompanyRepository
	Users       core.UserRepository
}

// InternshipService covers the posting and browsing surface: recruiters
// create postings, everyone browses the approved listings.
type InternshipService struct {
	internships core.InternshipRepository
	companies   core.CompanyRepository
	users       core.UserRepository
}

// NewInternshipService constructs a new InternshipService.
func NewInternshipService(opts InternshipServiceOptions) *InternshipService {
	return &InternshipService{
		internships: opts.Internships,
		companies:   opts.Companies,
		users:       opts.Users,
	}
}

// Create posts a new internship for the caller's company. New postings enter
// moderation as pending regardless of input.
func (s *InternshipService) Create(ctx context.Context, recruiterID string, req *model.CreateInternshipRequest) (*model.Internship, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	company, err := s.companies.GetByRecruiter(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, data.ErrCompanyNotFound) {
			return nil, apperrors.Validation("Create a company profile before posting internships.")
		}
		return nil, err
	}

	return s.internships.Create(ctx, company.ID, req)
}

// List retrieves the public listing page of approved internships.
func (s *InternshipService) List(ctx context.Context, opts model.InternshipsListOptions) ([]*model.InternshipCard, error) {
	if err := opts.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.internships.ListPublic(ctx, opts)
}

// Get retrieves one internship card, scoped by viewer: approved postings are
// public; pending and rejected ones are visible only to the owning recruiter
// and admins.
func (s *InternshipService) Get(ctx context.Context, id string, viewer *domainauth.Session) (*model.InternshipCard, error) {
	card, err := s.internships.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrInternshipNotFound) {
			return nil, apperrors.NotFound("Internship not found.")
		}
		return nil, err
	}
	if card.Status == model.InternshipStatusApproved {
		return card, nil
	}

	visible, err := s.canSeeUnapproved(ctx, card, viewer)
	if err != nil {
		return nil, err
	}
	if !visible {
		// Hide the existence of unapproved postings from outsiders.
		return nil, apperrors.NotFound("Internship not found.")
	}
	return card, nil
}

func (s *InternshipService) canSeeUnapproved(ctx context.Context, card *model.InternshipCard, viewer *domainauth.Session) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	if viewer.Role == domainauth.RoleAdmin {
		return true, nil
	}
	if viewer.Role != domainauth.RoleRecruiter {
		return false, nil
	}
	company, err := s.companies.GetByRecruiter(ctx, viewer.UserID)
	if err != nil {
		if errors.Is(err, data.ErrCompanyNotFound) {
			return false, nil
		}
		return false, err
	}
	return company.ID == card.CompanyID, nil
}

// ListMine retrieves the caller's own postings in every status.
func (s *InternshipService) ListMine(ctx context.Context, recruiterID string) ([]*model.Internship, error) {
	company, err := s.companies.GetByRecruiter(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, data.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company profile not found. Create one first.")
		}
		return nil, err
	}
	return s.internships.ListByCompany(ctx, company.ID)
}

// Recommended retrieves approved internships matching the student's skills,
// newest first. A student without skills gets the newest approved postings.
func (s *InternshipService) Recommended(ctx context.Context, studentID string) ([]*model.InternshipCard, error) {
	user, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return s.internships.Recommended(ctx, nil, recommendedLimit)
		}
		return nil, err
	}
	return s.internships.Recommended(ctx, user.Skills, recommendedLimit)
}
