package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/mocks"
)

// TestHiringWorkflow drives the full posting lifecycle through the service
// layer: recruiter posts, admin approves, student applies, recruiter selects,
// and the student is told the good news.
func TestHiringWorkflow(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	internships := mocks.NewMockInternshipRepository(ctrl)
	companies := mocks.NewMockCompanyRepository(ctrl)
	applications := mocks.NewMockApplicationRepository(ctrl)
	notifications := mocks.NewMockNotificationRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)

	posting := NewInternshipService(InternshipServiceOptions{
		Internships: internships,
		Companies:   companies,
		Users:       users,
	})
	moderation := NewModerationService(ModerationServiceOptions{
		Internships: internships,
		Companies:   companies,
	})
	applying := NewApplicationService(ApplicationServiceOptions{
		Applications:  applications,
		Internships:   internships,
		Companies:     companies,
		Notifications: notifications,
	})

	ctx := context.Background()
	company := &model.Company{ID: "company-1", RecruiterID: testRecruiterID, Approved: true}

	// Recruiter posts; the new internship enters moderation as pending.
	companies.EXPECT().GetByRecruiter(ctx, testRecruiterID).Return(company, nil).Times(1)
	internships.EXPECT().
		Create(ctx, "company-1", gomock.Any()).
		Return(&model.Internship{
			ID:        testInternshipID,
			CompanyID: "company-1",
			Title:     "Backend Intern",
			Status:    model.InternshipStatusPending,
		}, nil).
		Times(1)

	created, err := posting.Create(ctx, testRecruiterID, validCreateInternshipRequest())
	require.NoError(t, err)
	require.Equal(t, model.InternshipStatusPending, created.Status)

	// Admin approves.
	internships.EXPECT().
		Decide(ctx, testInternshipID, model.InternshipStatusApproved).
		Return(&model.Internship{
			ID:        testInternshipID,
			CompanyID: "company-1",
			Title:     "Backend Intern",
			Status:    model.InternshipStatusApproved,
		}, nil).
		Times(1)

	approved, err := moderation.DecideInternship(ctx, testInternshipID, ModerationActionApprove)
	require.NoError(t, err)
	require.Equal(t, model.InternshipStatusApproved, approved.Status)

	// Student applies; the recruiter is notified.
	internships.EXPECT().GetByID(ctx, testInternshipID).Return(approved, nil).Times(1)
	applications.EXPECT().
		Create(ctx, testInternshipID, testStudentID, gomock.Any()).
		Return(&model.Application{
			ID:           testApplicationID,
			InternshipID: testInternshipID,
			UserID:       testStudentID,
			Status:       model.ApplicationStatusApplied,
		}, nil).
		Times(1)
	companies.EXPECT().GetByID(ctx, "company-1").Return(company, nil).Times(1)
	notifications.EXPECT().
		Create(ctx, testRecruiterID, "New Application Received",
			"A new application was submitted for Backend Intern.", model.NotificationTypeInfo).
		Return(&model.Notification{}, nil).
		Times(1)

	submitted, err := applying.Submit(ctx, testStudentID, testInternshipID, nil)
	require.NoError(t, err)
	require.Equal(t, model.ApplicationStatusApplied, submitted.Status)

	// Recruiter selects the student; the student gets a success notification
	// referencing the internship title.
	applications.EXPECT().GetByID(ctx, testApplicationID).Return(submitted, nil).Times(1)
	internships.EXPECT().GetByID(ctx, testInternshipID).Return(approved, nil).Times(1)
	companies.EXPECT().GetByRecruiter(ctx, testRecruiterID).Return(company, nil).Times(1)
	applications.EXPECT().
		Decide(ctx, testApplicationID, model.ApplicationStatusSelected).
		Return(&model.Application{
			ID:           testApplicationID,
			InternshipID: testInternshipID,
			UserID:       testStudentID,
			Status:       model.ApplicationStatusSelected,
		}, nil).
		Times(1)
	notifications.EXPECT().
		Create(ctx, testStudentID, "Application Update",
			"Your application for Backend Intern has been selected.", model.NotificationTypeSuccess).
		Return(&model.Notification{}, nil).
		Times(1)

	decided, err := applying.UpdateStatus(ctx, testRecruiterID, testApplicationID,
		model.UpdateApplicationStatusRequest{Status: model.ApplicationStatusSelected})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusSelected, decided.Status)
}
