// Package mocks provides mock implementations for testing the internmatch services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// Upsert, GetByID, UpdateProfile, CountByRole
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/internmatch/internmatch-api/internal/core UserRepository

// Generate mock for CompanyRepository interface from internal/core package.
// This creates MockCompanyRepository with methods for all CompanyRepository interface methods:
// Create, GetByID, GetByRecruiter, Update, SetApproved, ListUnapproved, CountUnapproved
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=company_repository_mock.go github.com/internmatch/internmatch-api/internal/core CompanyRepository

// Generate mock for InternshipRepository interface from internal/core package.
// This creates MockInternshipRepository with methods for all InternshipRepository interface methods:
// Create, GetByID, GetCardByID, ListPublic, ListByCompany, ListPending, Decide, Recommended, CountByStatus
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=internship_repository_mock.go github.com/internmatch/internmatch-api/internal/core InternshipRepository

// Generate mock for ApplicationRepository interface from internal/core package.
// This creates MockApplicationRepository with methods for all ApplicationRepository interface methods:
// Create, GetByID, ListForStudent, ListForInternship, Decide
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=application_repository_mock.go github.com/internmatch/internmatch-api/internal/core ApplicationRepository

// Generate mock for NotificationRepository interface from internal/core package.
// This creates MockNotificationRepository with methods for all NotificationRepository interface methods:
// Create, ListForUser, CountUnread, MarkRead
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=notification_repository_mock.go github.com/internmatch/internmatch-api/internal/core NotificationRepository

// Generate mock for SavedInternshipRepository interface from internal/core package.
// This creates MockSavedInternshipRepository with methods for all SavedInternshipRepository interface methods:
// Toggle, ListSaved
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=saved_internship_repository_mock.go github.com/internmatch/internmatch-api/internal/core SavedInternshipRepository
