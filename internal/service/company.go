package service

import (
	"context"
	"errors"

	"github.com/internmatch/internmatch-api/internal/core"
	"github.com/internmatch/internmatch-api/internal/data"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// CompanyServiceOptions groups dependencies for CompanyService.
type CompanyServiceOptions struct {
	Companies core.CompanyRepository
}

// CompanyService manages recruiter company profiles.
type CompanyService struct {
	companies core.CompanyRepository
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(opts CompanyServiceOptions) *CompanyService {
	return &CompanyService{companies: opts.Companies}
}

// Create creates the caller's company profile. A recruiter has at most one;
// the store's unique constraint backs the rule.
func (s *CompanyService) Create(ctx context.Context, recruiterID string, req *model.CreateCompanyRequest) (*model.Company, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	company, err := s.companies.Create(ctx, recruiterID, req)
	if err != nil {
		if errors.Is(err, data.ErrCompanyExists) {
			return nil, apperrors.Conflict("You already have a company profile.")
		}
		return nil, err
	}
	return company, nil
}

// GetMine retrieves the caller's own company profile.
func (s *CompanyService) GetMine(ctx context.Context, recruiterID string) (*model.Company, error) {
	company, err := s.companies.GetByRecruiter(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, data.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company profile not found. Create one first.")
		}
		return nil, err
	}
	return company, nil
}

// Update updates the caller's own company profile fields. The approved flag
// is not among them.
func (s *CompanyService) Update(ctx context.Context, recruiterID string, req model.UpdateCompanyRequest) (*model.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	company, err := s.companies.Update(ctx, recruiterID, req)
	if err != nil {
		if errors.Is(err, data.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company profile not found. Create one first.")
		}
		return nil, err
	}
	return company, nil
}

// GetByID retrieves a company by its id.
func (s *CompanyService) GetByID(ctx context.Context, id string) (*model.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrCompanyNotFound) {
			return nil, apperrors.NotFound("Company not found.")
		}
		return nil, err
	}
	return company, nil
}
