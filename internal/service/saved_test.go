package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/internmatch/internmatch-api/internal/data"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
	"github.com/internmatch/internmatch-api/internal/mocks"
)

type savedFixture struct {
	saved       *mocks.MockSavedInternshipRepository
	internships *mocks.MockInternshipRepository
	service     *SavedService
}

// newSavedService creates mock repositories and the service for testing.
func newSavedService(t *testing.T) savedFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	saved := mocks.NewMockSavedInternshipRepository(ctrl)
	internships := mocks.NewMockInternshipRepository(ctrl)

	service := NewSavedService(SavedServiceOptions{
		Saved:       saved,
		Internships: internships,
	})

	return savedFixture{saved: saved, internships: internships, service: service}
}

func TestSavedService_Toggle(t *testing.T) {
	t.Parallel()
	f := newSavedService(t)

	ctx := context.Background()
	f.internships.EXPECT().
		GetByID(ctx, testInternshipID).
		Return(&model.Internship{ID: testInternshipID}, nil).
		Times(2)
	f.saved.EXPECT().Toggle(ctx, testStudentID, testInternshipID).Return(true, nil).Times(1)
	f.saved.EXPECT().Toggle(ctx, testStudentID, testInternshipID).Return(false, nil).Times(1)

	saved, err := f.service.Toggle(ctx, testStudentID, testInternshipID)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = f.service.Toggle(ctx, testStudentID, testInternshipID)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSavedService_Toggle_UnknownInternship(t *testing.T) {
	t.Parallel()
	f := newSavedService(t)

	ctx := context.Background()
	f.internships.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, data.ErrInternshipNotFound).
		Times(1)

	_, err := f.service.Toggle(ctx, testStudentID, "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSavedService_List(t *testing.T) {
	t.Parallel()
	f := newSavedService(t)

	ctx := context.Background()
	cards := []*model.InternshipCard{
		{Internship: model.Internship{ID: testInternshipID}, CompanyName: "Acme"},
	}

	f.saved.EXPECT().ListSaved(ctx, testStudentID).Return(cards, nil).Times(1)

	result, err := f.service.List(ctx, testStudentID)

	require.NoError(t, err)
	assert.Equal(t, cards, result)
}
