package core

import (
	"context"

	"github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for user account data operations.
type UserRepository interface {
	Upsert(ctx context.Context, id, email, fullName string, role auth.Role) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, req model.UpdateProfileRequest) (*model.User, error)
	CountByRole(ctx context.Context) (map[auth.Role]int64, error)
}

// CompanyRepository defines the interface for company profile data operations.
type CompanyRepository interface {
	Create(ctx context.Context, recruiterID string, req *model.CreateCompanyRequest) (*model.Company, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
	GetByRecruiter(ctx context.Context, recruiterID string) (*model.Company, error)
	Update(ctx context.Context, recruiterID string, req model.UpdateCompanyRequest) (*model.Company, error)
	SetApproved(ctx context.Context, id string, approved bool) (*model.Company, error)
	ListUnapproved(ctx context.Context) ([]*model.Company, error)
	CountUnapproved(ctx context.Context) (int64, error)
}

// InternshipRepository defines the interface for internship data operations.
type InternshipRepository interface {
	Create(ctx context.Context, companyID string, req *model.CreateInternshipRequest) (*model.Internship, error)
	GetByID(ctx context.Context, id string) (*model.Internship, error)
	GetCardByID(ctx context.Context, id string) (*model.InternshipCard, error)
	ListPublic(ctx context.Context, opts model.InternshipsListOptions) ([]*model.InternshipCard, error)
	ListByCompany(ctx context.Context, companyID string) ([]*model.Internship, error)
	ListPending(ctx context.Context) ([]*model.InternshipCard, error)
	Decide(ctx context.Context, id string, status model.InternshipStatus) (*model.Internship, error)
	Recommended(ctx context.Context, skills []string, limit int) ([]*model.InternshipCard, error)
	CountByStatus(ctx context.Context) (map[model.InternshipStatus]int64, error)
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, internshipID, userID string, req *model.SubmitApplicationRequest) (*model.Application, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	ListForStudent(ctx context.Context, userID string) ([]*model.ApplicationWithInternship, error)
	ListForInternship(ctx context.Context, internshipID string) ([]*model.ApplicationWithApplicant, error)
	Decide(ctx context.Context, id string, status model.ApplicationStatus) (*model.Application, error)
}

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	Create(ctx context.Context, userID, title, message string, typ model.NotificationType) (*model.Notification, error)
	ListForUser(ctx context.Context, userID string, opts model.NotificationsListOptions) ([]*model.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id, userID string) (*model.Notification, error)
}

// SavedInternshipRepository defines the interface for saved internship data operations.
type SavedInternshipRepository interface {
	Toggle(ctx context.Context, userID, internshipID string) (bool, error)
	ListSaved(ctx context.Context, userID string) ([]*model.InternshipCard, error)
}
