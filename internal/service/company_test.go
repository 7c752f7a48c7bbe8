package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/internmatch/internmatch-api/internal/data"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
	"github.com/internmatch/internmatch-api/internal/mocks"
)

const testRecruiterID = "recruiter-123"

// newCompanyService creates a mock company repository and service for testing.
func newCompanyService(t *testing.T) (*mocks.MockCompanyRepository, *CompanyService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	service := NewCompanyService(CompanyServiceOptions{Companies: companyRepo})

	return companyRepo, service
}

func TestCompanyService_Create_Success(t *testing.T) {
	t.Parallel()
	companyRepo, service := newCompanyService(t)

	ctx := context.Background()
	req := &model.CreateCompanyRequest{
		CompanyName: "Acme Robotics",
		Website:     stringPtr("https://acme.example.com"),
	}
	expected := &model.Company{
		ID:          "company-1",
		RecruiterID: testRecruiterID,
		CompanyName: "Acme Robotics",
		Approved:    false,
		CreatedAt:   time.Now(),
	}

	companyRepo.EXPECT().
		Create(ctx, testRecruiterID, req).
		Return(expected, nil).
		Times(1)

	company, err := service.Create(ctx, testRecruiterID, req)

	require.NoError(t, err)
	assert.Equal(t, expected, company)
}

func TestCompanyService_Create_Validation(t *testing.T) {
	t.Parallel()
	_, service := newCompanyService(t)

	ctx := context.Background()

	_, err := service.Create(ctx, testRecruiterID, nil)
	assert.True(t, apperrors.IsValidation(err))

	_, err = service.Create(ctx, testRecruiterID, &model.CreateCompanyRequest{CompanyName: "   "})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCompanyService_Create_AlreadyExists(t *testing.T) {
	t.Parallel()
	companyRepo, service := newCompanyService(t)

	ctx := context.Background()
	req := &model.CreateCompanyRequest{CompanyName: "Acme Robotics"}

	companyRepo.EXPECT().
		Create(ctx, testRecruiterID, req).
		Return(nil, data.ErrCompanyExists).
		Times(1)

	_, err := service.Create(ctx, testRecruiterID, req)

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCompanyService_GetMine(t *testing.T) {
	t.Parallel()
	companyRepo, service := newCompanyService(t)

	ctx := context.Background()
	expected := &model.Company{ID: "company-1", RecruiterID: testRecruiterID, CompanyName: "Acme"}

	companyRepo.EXPECT().
		GetByRecruiter(ctx, testRecruiterID).
		Return(expected, nil).
		Times(1)

	company, err := service.GetMine(ctx, testRecruiterID)

	require.NoError(t, err)
	assert.Equal(t, expected, company)
}

func TestCompanyService_GetMine_NotFound(t *testing.T) {
	t.Parallel()
	companyRepo, service := newCompanyService(t)

	ctx := context.Background()
	companyRepo.EXPECT().
		GetByRecruiter(ctx, testRecruiterID).
		Return(nil, data.ErrCompanyNotFound).
		Times(1)

	_, err := service.GetMine(ctx, testRecruiterID)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCompanyService_Update_Success(t *testing.T) {
	t.Parallel()
	companyRepo, service := newCompanyService(t)

	ctx := context.Background()
	req := model.UpdateCompanyRequest{Description: stringPtr("We build robots.")}
	expected := &model.Company{
		ID:          "company-1",
		RecruiterID: testRecruiterID,
		CompanyName: "Acme",
		Description: stringPtr("We build robots."),
	}

	companyRepo.EXPECT().
		Update(ctx, testRecruiterID, req).
		Return(expected, nil).
		Times(1)

	company, err := service.Update(ctx, testRecruiterID, req)

	require.NoError(t, err)
	assert.Equal(t, expected, company)
}

func TestCompanyService_Update_EmptyRequest(t *testing.T) {
	t.Parallel()
	_, service := newCompanyService(t)

	_, err := service.Update(context.Background(), testRecruiterID, model.UpdateCompanyRequest{})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCompanyService_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	companyRepo, service := newCompanyService(t)

	ctx := context.Background()
	companyRepo.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, data.ErrCompanyNotFound).
		Times(1)

	_, err := service.GetByID(ctx, "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
