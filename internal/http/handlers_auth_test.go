package httpx

import (
	"encoding/json"
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
	mockauth "github.com/internmatch/internmatch-api/internal/mocks/auth"
	"github.com/internmatch/internmatch-api/internal/service"
)

// newAuthHandlers builds handlers over a real AuthService with a fake IdP,
// an in-memory session store, and a mocked user repository.
func newAuthHandlers(t *testing.T) (*mocks.MockUserRepository, *AuthHandlers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUserRepository(ctrl)
	accounts := service.NewAccountService(service.AccountServiceOptions{Users: users})
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Provider: mockauth.NewMockIdentityProvider(),
		Sessions: mockauth.NewMemorySessionStore(),
		Accounts: accounts,
	})

	return users, &AuthHandlers{Svc: authSvc, Logger: discardLogger()}
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Signup(t *testing.T) {
	t.Parallel()
	users, h := newAuthHandlers(t)

	users.EXPECT().
		Upsert(gomock.Any(), "ada@example.com", "ada@example.com", "Ada Lovelace", domainauth.RoleStudent).
		Return(&model.User{
			ID:       "ada@example.com",
			Email:    "ada@example.com",
			FullName: "Ada Lovelace",
			Role:     domainauth.RoleStudent,
		}, nil).
		Times(1)

	body := `{"email":"ada@example.com","password":"hunter2!","full_name":"Ada Lovelace","role":"student"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	cookie := sessionCookieFrom(t, rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Positive(t, cookie.MaxAge)

	var resp struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "student", resp.User["role"])
}

func TestAuthHandlers_Signup_InvalidRole(t *testing.T) {
	t.Parallel()
	_, h := newAuthHandlers(t)

	body := `{"email":"eve@example.com","password":"pw","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, sessionCookieFrom(t, rec))
}

func TestAuthHandlers_LoginAndStatusAndLogout(t *testing.T) {
	t.Parallel()
	users, h := newAuthHandlers(t)

	users.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.User{
			ID:    "rec@example.com",
			Email: "rec@example.com",
			Role:  domainauth.RoleRecruiter,
		}, nil).
		Times(1)

	// Login
	loginBody := `{"email":"rec@example.com","password":"pw"}`
	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(loginBody))
	loginRec := httptest.NewRecorder()
	h.Login(loginRec, loginReq)

	require.Equal(t, http.StatusOK, loginRec.Code)
	cookie := sessionCookieFrom(t, loginRec)
	require.NotNil(t, cookie)

	// Status with the session cookie
	statusReq := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	statusReq.AddCookie(cookie)
	statusRec := httptest.NewRecorder()
	h.Status(statusRec, statusReq)

	require.Equal(t, http.StatusOK, statusRec.Code)
	var status struct {
		Authenticated bool           `json:"authenticated"`
		User          map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(statusRec.Body.Bytes(), &status))
	assert.True(t, status.Authenticated)
	assert.Equal(t, "recruiter", status.User["role"])

	// Logout clears the cookie and kills the session
	logoutReq := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutRec := httptest.NewRecorder()
	h.Logout(logoutRec, logoutReq)

	require.Equal(t, http.StatusOK, logoutRec.Code)
	cleared := sessionCookieFrom(t, logoutRec)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)

	// Status after logout is anonymous
	afterReq := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	afterReq.AddCookie(cookie)
	afterRec := httptest.NewRecorder()
	h.Status(afterRec, afterReq)

	var after struct {
		Authenticated bool `json:"authenticated"`
	}
	require.NoError(t, json.Unmarshal(afterRec.Body.Bytes(), &after))
	assert.False(t, after.Authenticated)
}

func TestAuthHandlers_Login_BadCredentials(t *testing.T) {
	t.Parallel()
	_, h := newAuthHandlers(t)

	// The fake provider rejects empty passwords with a non-sentinel error,
	// so exercise the validation path instead.
	body := `{"email":"","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlers_Status_NoCookie(t *testing.T) {
	t.Parallel()
	_, h := newAuthHandlers(t)

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		Authenticated bool `json:"authenticated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Authenticated)
}
