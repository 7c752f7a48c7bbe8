package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/internmatch/internmatch-api/internal/core"
	"github.com/internmatch/internmatch-api/internal/data"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Applications  core.ApplicationRepository
	Internships   core.InternshipRepository
	Companies     core.CompanyRepository
	Notifications core.NotificationRepository
	Logger        *slog.Logger
}

// ApplicationService runs the application workflow: students submit against
// approved internships, the owning recruiter reviews and decides.
type ApplicationService struct {
	applications  core.ApplicationRepository
	internships   core.InternshipRepository
	companies     core.CompanyRepository
	notifications core.NotificationRepository
	logger        *slog.Logger
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{
		applications:  opts.Applications,
		internships:   opts.Internships,
		companies:     opts.Companies,
		notifications: opts.Notifications,
		logger:        logger,
	}
}

// Submit files a student's application against an approved internship. The
// one-application rule is the store's unique constraint; no pre-read, so
// concurrent duplicates cannot slip through. The recruiter notification is
// best effort: its failure never fails the submission.
func (s *ApplicationService) Submit(ctx context.Context, studentID, internshipID string, req *model.SubmitApplicationRequest) (*model.Application, error) {
	if req == nil {
		req = &model.SubmitApplicationRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	internship, err := s.internships.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, data.ErrInternshipNotFound) {
			return nil, apperrors.NotFound("Internship not found.")
		}
		return nil, err
	}
	if internship.Status != model.InternshipStatusApproved {
		return nil, apperrors.NotFound("Internship not found.")
	}

	app, err := s.applications.Create(ctx, internshipID, studentID, req)
	if err != nil {
		if errors.Is(err, data.ErrAlreadyApplied) {
			return nil, apperrors.Conflict("You have already applied to this internship.")
		}
		return nil, err
	}

	s.notifyRecruiter(ctx, internship)

	return app, nil
}

func (s *ApplicationService) notifyRecruiter(ctx context.Context, internship *model.Internship) {
	company, err := s.companies.GetByID(ctx, internship.CompanyID)
	if err != nil {
		s.logger.Warn("skipping recruiter notification, company lookup failed",
			"internship_id", internship.ID, "error", err)
		return
	}
	msg := fmt.Sprintf("A new application was submitted for %s.", internship.Title)
	if _, err := s.notifications.Create(ctx, company.RecruiterID, "New Application Received", msg, model.NotificationTypeInfo); err != nil {
		s.logger.Warn("recruiter notification failed",
			"internship_id", internship.ID, "recruiter_id", company.RecruiterID, "error", err)
	}
}

// ListForStudent retrieves the caller's applications with internship and
// company display fields.
func (s *ApplicationService) ListForStudent(ctx context.Context, studentID string) ([]*model.ApplicationWithInternship, error) {
	return s.applications.ListForStudent(ctx, studentID)
}

// ListForInternship retrieves an internship's applications for its owning
// recruiter.
func (s *ApplicationService) ListForInternship(ctx context.Context, recruiterID, internshipID string) ([]*model.ApplicationWithApplicant, error) {
	internship, err := s.internships.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, data.ErrInternshipNotFound) {
			return nil, apperrors.NotFound("Internship not found.")
		}
		return nil, err
	}
	if err := s.requireOwnership(ctx, recruiterID, internship); err != nil {
		return nil, err
	}
	return s.applications.ListForInternship(ctx, internshipID)
}

// UpdateStatus records the recruiter's decision on an application. Ownership
// runs two hops: application → internship → company recruiter. Valid targets
// from applied are selected and rejected; decisions are one-way.
func (s *ApplicationService) UpdateStatus(ctx context.Context, recruiterID, applicationID string, req model.UpdateApplicationStatusRequest) (*model.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, data.ErrApplicationNotFound) {
			return nil, apperrors.NotFound("Application not found.")
		}
		return nil, err
	}

	internship, err := s.internships.GetByID(ctx, app.InternshipID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, recruiterID, internship); err != nil {
		return nil, err
	}

	decided, err := s.applications.Decide(ctx, applicationID, req.Status)
	if err != nil {
		if errors.Is(err, data.ErrApplicationDecided) {
			return nil, apperrors.Conflict("This application has already been decided.")
		}
		if errors.Is(err, data.ErrApplicationNotFound) {
			return nil, apperrors.NotFound("Application not found.")
		}
		return nil, err
	}

	s.notifyStudent(ctx, decided, internship)

	return decided, nil
}

func (s *ApplicationService) notifyStudent(ctx context.Context, app *model.Application, internship *model.Internship) {
	typ := model.NotificationTypeSuccess
	if app.Status == model.ApplicationStatusRejected {
		typ = model.NotificationTypeWarning
	}
	msg := fmt.Sprintf("Your application for %s has been %s.", internship.Title, app.Status)
	if _, err := s.notifications.Create(ctx, app.UserID, "Application Update", msg, typ); err != nil {
		s.logger.Warn("student notification failed",
			"application_id", app.ID, "user_id", app.UserID, "error", err)
	}
}

// requireOwnership verifies the internship belongs to the caller's company.
func (s *ApplicationService) requireOwnership(ctx context.Context, recruiterID string, internship *model.Internship) error {
	company, err := s.companies.GetByRecruiter(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, data.ErrCompanyNotFound) {
			return apperrors.Forbidden("You do not own this internship.")
		}
		return err
	}
	if company.ID != internship.CompanyID {
		return apperrors.Forbidden("You do not own this internship.")
	}
	return nil
}
