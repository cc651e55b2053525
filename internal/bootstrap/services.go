package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/teamboard/teamboard/config"
	redisadapters "github.com/teamboard/teamboard/internal/adapters/redis"
	"github.com/teamboard/teamboard/internal/authz"
	"github.com/teamboard/teamboard/internal/data"
	"github.com/teamboard/teamboard/internal/service"
	"github.com/teamboard/teamboard/internal/token"
)

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Dashboard  *service.DashboardService
	Team       *service.TeamService
	Activities *service.ActivityService
	Users      *service.UserAdminService
	Codec      *token.Codec
	Gate       *authz.Gate
	UserRepo   *data.UserRepo
}

// BuildServicesOptions groups dependencies for BuildServices.
type BuildServicesOptions struct {
	Config config.AppConfig
	DB     *sql.DB
	Redis  goredis.UniversalClient
	Logger *slog.Logger
}

// BuildServices wires repositories, adapters and services together.
func BuildServices(opts BuildServicesOptions) (*ServiceContainer, error) {
	codec, err := token.NewCodec(token.Config{
		Secret: opts.Config.Auth.JWTSecret,
		TTL:    opts.Config.Auth.TokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("token codec: %w", err)
	}

	userRepo := data.NewUserRepo(opts.DB)
	activityRepo := data.NewActivityRepo(opts.DB)
	teamRepo := data.NewTeamRepo(opts.DB)

	limiter := redisadapters.NewLoginLimiter(opts.Redis, redisadapters.LoginLimiterConfig{
		MaxAttempts: opts.Config.Auth.LoginMaxAttempts,
		Window:      opts.Config.Auth.LoginAttemptWindow,
	})
	summaryCache := redisadapters.NewSummaryCache(opts.Redis, opts.Config.Redis.DashboardTTL)

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Codec:   codec,
		Users:   userRepo,
		Limiter: limiter,
		Logger:  opts.Logger,
	})

	return &ServiceContainer{
		Auth: authSvc,
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Users:      userRepo,
			Team:       teamRepo,
			Activities: activityRepo,
			Cache:      summaryCache,
			Logger:     opts.Logger,
		}),
		Team:       service.NewTeamService(teamRepo),
		Activities: service.NewActivityService(activityRepo),
		Users:      service.NewUserAdminService(userRepo),
		Codec:      codec,
		Gate:       authz.NewGate(authSvc),
		UserRepo:   userRepo,
	}, nil
}
