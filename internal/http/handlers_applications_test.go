package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/mocks"
	"github.com/internmatch/internmatch-api/internal/service"
)

type applicationHandlerMocks struct {
	applications  *mocks.MockApplicationRepository
	internships   *mocks.MockInternshipRepository
	companies     *mocks.MockCompanyRepository
	notifications *mocks.MockNotificationRepository
}

func newApplicationHandlers(t *testing.T) (applicationHandlerMocks, *ApplicationHandlers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := applicationHandlerMocks{
		applications:  mocks.NewMockApplicationRepository(ctrl),
		internships:   mocks.NewMockInternshipRepository(ctrl),
		companies:     mocks.NewMockCompanyRepository(ctrl),
		notifications: mocks.NewMockNotificationRepository(ctrl),
	}
	svc := service.NewApplicationService(service.ApplicationServiceOptions{
		Applications:  m.applications,
		Internships:   m.internships,
		Companies:     m.companies,
		Notifications: m.notifications,
	})
	return m, &ApplicationHandlers{Svc: svc}
}

func newSubmitRequest(body io.Reader) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/internships/internship-1/applications", body)
	req.SetPathValue("id", "internship-1")
	session := &domainauth.Session{UserID: "student-1", Role: domainauth.RoleStudent}
	return req.WithContext(SetSessionInContext(req.Context(), session))
}

func expectApprovedInternship(m applicationHandlerMocks) {
	m.internships.EXPECT().
		GetByID(gomock.Any(), "internship-1").
		Return(&model.Internship{
			ID:        "internship-1",
			CompanyID: "company-1",
			Title:     "Backend Intern",
			Status:    model.InternshipStatusApproved,
		}, nil).
		Times(1)
}

func expectRecruiterNotified(m applicationHandlerMocks) {
	m.companies.EXPECT().
		GetByID(gomock.Any(), "company-1").
		Return(&model.Company{ID: "company-1", RecruiterID: "recruiter-1"}, nil).
		Times(1)
	m.notifications.EXPECT().
		Create(gomock.Any(), "recruiter-1", "New Application Received", gomock.Any(), model.NotificationTypeInfo).
		Return(&model.Notification{}, nil).
		Times(1)
}

func TestApplicationHandlers_Submit_WithBody(t *testing.T) {
	t.Parallel()
	m, h := newApplicationHandlers(t)

	expectApprovedInternship(m)
	m.applications.EXPECT().
		Create(gomock.Any(), "internship-1", "student-1", &model.SubmitApplicationRequest{
			CoverLetter: stringPtr("I would love to join."),
		}).
		Return(&model.Application{ID: "app-1", Status: model.ApplicationStatusApplied}, nil).
		Times(1)
	expectRecruiterNotified(m)

	body := strings.NewReader(`{"cover_letter":"I would love to join."}`)
	rec := httptest.NewRecorder()
	h.Submit(rec, newSubmitRequest(body))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "app-1", resp.ID)
}

func TestApplicationHandlers_Submit_EmptyChunkedBody(t *testing.T) {
	t.Parallel()
	m, h := newApplicationHandlers(t)

	expectApprovedInternship(m)
	m.applications.EXPECT().
		Create(gomock.Any(), "internship-1", "student-1", &model.SubmitApplicationRequest{}).
		Return(&model.Application{ID: "app-1", Status: model.ApplicationStatusApplied}, nil).
		Times(1)
	expectRecruiterNotified(m)

	// io.MultiReader() has no declared length, so httptest leaves
	// ContentLength at -1, the same shape a chunked request arrives in.
	rec := httptest.NewRecorder()
	h.Submit(rec, newSubmitRequest(io.MultiReader()))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestApplicationHandlers_Submit_MalformedBody(t *testing.T) {
	t.Parallel()
	_, h := newApplicationHandlers(t)

	rec := httptest.NewRecorder()
	h.Submit(rec, newSubmitRequest(strings.NewReader(`{"cover_letter":`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_json", resp["error"])
}
