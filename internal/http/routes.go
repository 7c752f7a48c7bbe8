package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth          *service.AuthService
	Accounts      *service.AccountService
	Companies     *service.CompanyService
	Internships   *service.InternshipService
	Applications  *service.ApplicationService
	Saved         *service.SavedService
	Notifications *service.NotificationService
	Moderation    *service.ModerationService
	Stats         *service.StatsService

	CookieDomain  string
	SecureCookies bool
	Logger        *slog.Logger // optional; defaults to slog.Default()
}

// NewRouter creates and configures the HTTP router with the full API surface.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:           services.Auth,
		CookieDomain:  services.CookieDomain,
		SecureCookies: services.SecureCookies,
		Logger:        logger,
	}
	internshipHandlers := &InternshipHandlers{Svc: services.Internships}
	companyHandlers := &CompanyHandlers{Svc: services.Companies}
	profileHandlers := &ProfileHandlers{Svc: services.Accounts}
	applicationHandlers := &ApplicationHandlers{Svc: services.Applications}
	savedHandlers := &SavedHandlers{Svc: services.Saved}
	notificationHandlers := &NotificationHandlers{Svc: services.Notifications}
	adminHandlers := &AdminHandlers{Moderation: services.Moderation, StatsSvc: services.Stats}

	registerAuthRoutes(mux, authHandlers)
	registerPublicRoutes(mux, internshipHandlers, services.Auth)
	registerStudentRoutes(mux, studentRouteHandlers{
		Internships:  internshipHandlers,
		Applications: applicationHandlers,
		Saved:        savedHandlers,
	}, services.Auth)
	registerRecruiterRoutes(mux, recruiterRouteHandlers{
		Internships:  internshipHandlers,
		Companies:    companyHandlers,
		Applications: applicationHandlers,
	}, services.Auth)
	registerAccountRoutes(mux, profileHandlers, notificationHandlers, services.Auth)
	registerAdminRoutes(mux, adminHandlers, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return Recover(logger)(Logging(logger)(mux))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/status", h.Status)
}

// registerPublicRoutes wires the browse surface. The detail route takes an
// optional session so owning recruiters and admins see unapproved postings.
func registerPublicRoutes(mux *http.ServeMux, h *InternshipHandlers, auth SessionResolver) {
	optional := OptionalAuth(auth)
	mux.HandleFunc("GET /api/internships", h.List)
	mux.Handle("GET /api/internships/{id}", optional(http.HandlerFunc(h.Get)))
}

type studentRouteHandlers struct {
	Internships  *InternshipHandlers
	Applications *ApplicationHandlers
	Saved        *SavedHandlers
}

func registerStudentRoutes(mux *http.ServeMux, h studentRouteHandlers, auth SessionResolver) {
	student := RequireRole(auth, domainauth.RoleStudent)
	mux.Handle("GET /api/internships/recommended", student(http.HandlerFunc(h.Internships.Recommended)))
	mux.Handle("POST /api/internships/{id}/applications", student(http.HandlerFunc(h.Applications.Submit)))
	mux.Handle("GET /api/applications", student(http.HandlerFunc(h.Applications.ListMine)))
	mux.Handle("POST /api/internships/{id}/save", student(http.HandlerFunc(h.Saved.Toggle)))
	mux.Handle("GET /api/saved", student(http.HandlerFunc(h.Saved.List)))
}

type recruiterRouteHandlers struct {
	Internships  *InternshipHandlers
	Companies    *CompanyHandlers
	Applications *ApplicationHandlers
}

func registerRecruiterRoutes(mux *http.ServeMux, h recruiterRouteHandlers, auth SessionResolver) {
	recruiter := RequireRole(auth, domainauth.RoleRecruiter)
	mux.Handle("POST /api/internships", recruiter(http.HandlerFunc(h.Internships.Create)))
	mux.Handle("GET /api/recruiter/internships", recruiter(http.HandlerFunc(h.Internships.ListMine)))
	mux.Handle("GET /api/company", recruiter(http.HandlerFunc(h.Companies.Get)))
	mux.Handle("POST /api/company", recruiter(http.HandlerFunc(h.Companies.Create)))
	mux.Handle("PATCH /api/company", recruiter(http.HandlerFunc(h.Companies.Update)))
	mux.Handle("GET /api/internships/{id}/applications", recruiter(http.HandlerFunc(h.Applications.ListForInternship)))
	mux.Handle("PATCH /api/applications/{id}", recruiter(http.HandlerFunc(h.Applications.UpdateStatus)))
}

// registerAccountRoutes wires routes open to any signed-in role. Profile
// updates are the exception: only students carry editable profile fields.
func registerAccountRoutes(mux *http.ServeMux, profile *ProfileHandlers, notifications *NotificationHandlers, auth SessionResolver) {
	signedIn := RequireAuth(auth)
	student := RequireRole(auth, domainauth.RoleStudent)
	mux.Handle("GET /api/profile", signedIn(http.HandlerFunc(profile.Get)))
	mux.Handle("PATCH /api/profile", student(http.HandlerFunc(profile.Update)))
	mux.Handle("GET /api/notifications", signedIn(http.HandlerFunc(notifications.List)))
	mux.Handle("PATCH /api/notifications/{id}/read", signedIn(http.HandlerFunc(notifications.MarkRead)))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, auth SessionResolver) {
	admin := RequireRole(auth, domainauth.RoleAdmin)
	mux.Handle("GET /api/admin/pending", admin(http.HandlerFunc(h.Pending)))
	mux.Handle("PATCH /api/admin/internships/{id}", admin(http.HandlerFunc(h.DecideInternship)))
	mux.Handle("PATCH /api/admin/companies/{id}", admin(http.HandlerFunc(h.SetCompanyApproval)))
	mux.Handle("GET /api/admin/stats", admin(http.HandlerFunc(h.Stats)))
}
