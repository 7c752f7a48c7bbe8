package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/internmatch/internmatch-api/internal/data"
	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
	"github.com/internmatch/internmatch-api/internal/mocks"
)

const testInternshipID = "internship-123"

type internshipFixture struct {
	internships *mocks.MockInternshipRepository
	companies   *mocks.MockCompanyRepository
	users       *mocks.MockUserRepository
	service     *InternshipService
}

// newInternshipService creates mock repositories and the service for testing.
func newInternshipService(t *testing.T) internshipFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	internships := mocks.NewMockInternshipRepository(ctrl)
	companies := mocks.NewMockCompanyRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)

	service := NewInternshipService(InternshipServiceOptions{
		Internships: internships,
		Companies:   companies,
		Users:       users,
	})

	return internshipFixture{internships: internships, companies: companies, users: users, service: service}
}

func validCreateInternshipRequest() *model.CreateInternshipRequest {
	return &model.CreateInternshipRequest{
		Title:       "Backend Intern",
		Description: "Build APIs in Go.",
		StipendMin:  1000,
		StipendMax:  2000,
		Openings:    2,
	}
}

func TestInternshipService_Create_Success(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	req := validCreateInternshipRequest()
	company := &model.Company{ID: "company-1", RecruiterID: testRecruiterID}
	expected := &model.Internship{
		ID:        testInternshipID,
		CompanyID: "company-1",
		Title:     "Backend Intern",
		Status:    model.InternshipStatusPending,
	}

	f.companies.EXPECT().
		GetByRecruiter(ctx, testRecruiterID).
		Return(company, nil).
		Times(1)
	f.internships.EXPECT().
		Create(ctx, "company-1", req).
		Return(expected, nil).
		Times(1)

	internship, err := f.service.Create(ctx, testRecruiterID, req)

	require.NoError(t, err)
	assert.Equal(t, model.InternshipStatusPending, internship.Status)
}

func TestInternshipService_Create_NoCompanyProfile(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	f.companies.EXPECT().
		GetByRecruiter(ctx, testRecruiterID).
		Return(nil, data.ErrCompanyNotFound).
		Times(1)

	_, err := f.service.Create(ctx, testRecruiterID, validCreateInternshipRequest())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInternshipService_Create_InvalidRequest(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()

	_, err := f.service.Create(ctx, testRecruiterID, nil)
	assert.True(t, apperrors.IsValidation(err))

	req := validCreateInternshipRequest()
	req.StipendMax = req.StipendMin - 1
	_, err = f.service.Create(ctx, testRecruiterID, req)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInternshipService_List(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	cards := []*model.InternshipCard{
		{Internship: model.Internship{ID: testInternshipID, Status: model.InternshipStatusApproved}, CompanyName: "Acme"},
	}

	// Page and sort normalize before the query runs.
	f.internships.EXPECT().
		ListPublic(ctx, model.InternshipsListOptions{Sort: model.InternshipSortNewest, Page: 1}).
		Return(cards, nil).
		Times(1)

	result, err := f.service.List(ctx, model.InternshipsListOptions{})

	require.NoError(t, err)
	assert.Equal(t, cards, result)
}

func TestInternshipService_List_InvalidSort(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	_, err := f.service.List(context.Background(), model.InternshipsListOptions{Sort: "alphabetical"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInternshipService_Get_ApprovedIsPublic(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	card := &model.InternshipCard{
		Internship:  model.Internship{ID: testInternshipID, Status: model.InternshipStatusApproved},
		CompanyName: "Acme",
	}

	f.internships.EXPECT().
		GetCardByID(ctx, testInternshipID).
		Return(card, nil).
		Times(1)

	result, err := f.service.Get(ctx, testInternshipID, nil)

	require.NoError(t, err)
	assert.Equal(t, card, result)
}

func TestInternshipService_Get_PendingVisibility(t *testing.T) {
	t.Parallel()

	pendingCard := func() *model.InternshipCard {
		return &model.InternshipCard{
			Internship: model.Internship{
				ID:        testInternshipID,
				CompanyID: "company-1",
				Status:    model.InternshipStatusPending,
			},
		}
	}

	t.Run("admin sees it", func(t *testing.T) {
		t.Parallel()
		f := newInternshipService(t)
		ctx := context.Background()

		f.internships.EXPECT().GetCardByID(ctx, testInternshipID).Return(pendingCard(), nil).Times(1)

		viewer := &domainauth.Session{UserID: "admin-1", Role: domainauth.RoleAdmin}
		result, err := f.service.Get(ctx, testInternshipID, viewer)
		require.NoError(t, err)
		assert.Equal(t, model.InternshipStatusPending, result.Status)
	})

	t.Run("owning recruiter sees it", func(t *testing.T) {
		t.Parallel()
		f := newInternshipService(t)
		ctx := context.Background()

		f.internships.EXPECT().GetCardByID(ctx, testInternshipID).Return(pendingCard(), nil).Times(1)
		f.companies.EXPECT().
			GetByRecruiter(ctx, testRecruiterID).
			Return(&model.Company{ID: "company-1", RecruiterID: testRecruiterID}, nil).
			Times(1)

		viewer := &domainauth.Session{UserID: testRecruiterID, Role: domainauth.RoleRecruiter}
		_, err := f.service.Get(ctx, testInternshipID, viewer)
		require.NoError(t, err)
	})

	t.Run("other recruiter gets not found", func(t *testing.T) {
		t.Parallel()
		f := newInternshipService(t)
		ctx := context.Background()

		f.internships.EXPECT().GetCardByID(ctx, testInternshipID).Return(pendingCard(), nil).Times(1)
		f.companies.EXPECT().
			GetByRecruiter(ctx, "recruiter-other").
			Return(&model.Company{ID: "company-other"}, nil).
			Times(1)

		viewer := &domainauth.Session{UserID: "recruiter-other", Role: domainauth.RoleRecruiter}
		_, err := f.service.Get(ctx, testInternshipID, viewer)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("student gets not found", func(t *testing.T) {
		t.Parallel()
		f := newInternshipService(t)
		ctx := context.Background()

		f.internships.EXPECT().GetCardByID(ctx, testInternshipID).Return(pendingCard(), nil).Times(1)

		viewer := &domainauth.Session{UserID: "student-1", Role: domainauth.RoleStudent}
		_, err := f.service.Get(ctx, testInternshipID, viewer)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("anonymous gets not found", func(t *testing.T) {
		t.Parallel()
		f := newInternshipService(t)
		ctx := context.Background()

		f.internships.EXPECT().GetCardByID(ctx, testInternshipID).Return(pendingCard(), nil).Times(1)

		_, err := f.service.Get(ctx, testInternshipID, nil)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestInternshipService_Get_NotFound(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	f.internships.EXPECT().
		GetCardByID(ctx, "missing").
		Return(nil, data.ErrInternshipNotFound).
		Times(1)

	_, err := f.service.Get(ctx, "missing", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInternshipService_ListMine(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	company := &model.Company{ID: "company-1", RecruiterID: testRecruiterID}
	internships := []*model.Internship{
		{ID: testInternshipID, CompanyID: "company-1", Status: model.InternshipStatusPending},
	}

	f.companies.EXPECT().GetByRecruiter(ctx, testRecruiterID).Return(company, nil).Times(1)
	f.internships.EXPECT().ListByCompany(ctx, "company-1").Return(internships, nil).Times(1)

	result, err := f.service.ListMine(ctx, testRecruiterID)

	require.NoError(t, err)
	assert.Equal(t, internships, result)
}

func TestInternshipService_ListMine_NoCompany(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	f.companies.EXPECT().
		GetByRecruiter(ctx, testRecruiterID).
		Return(nil, data.ErrCompanyNotFound).
		Times(1)

	_, err := f.service.ListMine(ctx, testRecruiterID)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInternshipService_Recommended_UsesProfileSkills(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	user := &model.User{ID: "student-1", Skills: []string{"go", "sql"}}
	cards := []*model.InternshipCard{
		{Internship: model.Internship{ID: testInternshipID}, CompanyName: "Acme"},
	}

	f.users.EXPECT().GetByID(ctx, "student-1").Return(user, nil).Times(1)
	f.internships.EXPECT().
		Recommended(ctx, []string{"go", "sql"}, recommendedLimit).
		Return(cards, nil).
		Times(1)

	result, err := f.service.Recommended(ctx, "student-1")

	require.NoError(t, err)
	assert.Equal(t, cards, result)
}

func TestInternshipService_Recommended_MissingProfileFallsBack(t *testing.T) {
	t.Parallel()
	f := newInternshipService(t)

	ctx := context.Background()
	f.users.EXPECT().GetByID(ctx, "student-1").Return(nil, data.ErrUserNotFound).Times(1)
	f.internships.EXPECT().
		Recommended(ctx, nil, recommendedLimit).
		Return([]*model.InternshipCard{}, nil).
		Times(1)

	result, err := f.service.Recommended(ctx, "student-1")

	require.NoError(t, err)
	assert.Empty(t, result)
}
