package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/internmatch/internmatch-api/config"
	"github.com/internmatch/internmatch-api/internal/data"
	"github.com/internmatch/internmatch-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth          *service.AuthService
	Accounts      *service.AccountService
	Companies     *service.CompanyService
	Internships   *service.InternshipService
	Applications  *service.ApplicationService
	Saved         *service.SavedService
	Notifications *service.NotificationService
	Moderation    *service.ModerationService
	Stats         *service.StatsService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// InitializeServices creates all application services with their dependencies.
func InitializeServices(deps ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	users := data.NewUserRepo(deps.DB)
	companies := data.NewCompanyRepo(deps.DB)
	internships := data.NewInternshipRepo(deps.DB)
	applications := data.NewApplicationRepo(deps.DB)
	saved := data.NewSavedInternshipRepo(deps.DB)
	notifications := data.NewNotificationRepo(deps.DB)

	accounts := service.NewAccountService(service.AccountServiceOptions{
		Users:  users,
		Logger: logger,
	})

	auth, err := BuildAuthService(AuthDeps{
		Auth:        deps.Config.Auth,
		IsDev:       deps.Config.IsDev,
		RedisClient: deps.RedisClient,
		Accounts:    accounts,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
	}

	return ServiceContainer{
		Auth:     auth,
		Accounts: accounts,
		Companies: service.NewCompanyService(service.CompanyServiceOptions{
			Companies: companies,
		}),
		Internships: service.NewInternshipService(service.InternshipServiceOptions{
			Internships: internships,
			Companies:   companies,
			Users:       users,
		}),
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{
			Applications:  applications,
			Internships:   internships,
			Companies:     companies,
			Notifications: notifications,
			Logger:        logger,
		}),
		Saved: service.NewSavedService(service.SavedServiceOptions{
			Saved:       saved,
			Internships: internships,
		}),
		Notifications: service.NewNotificationService(service.NotificationServiceOptions{
			Notifications: notifications,
		}),
		Moderation: service.NewModerationService(service.ModerationServiceOptions{
			Internships: internships,
			Companies:   companies,
		}),
		Stats: service.NewStatsService(service.StatsServiceOptions{
			Internships: internships,
			Companies:   companies,
			Users:       users,
		}),
	}, nil
}
