package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/target/settle-ui-api/config"
	"github.com/target/settle-ui-api/internal/adapters/upstream"
	"github.com/target/settle-ui-api/internal/data"
	"github.com/target/settle-ui-api/internal/ports"
	"github.com/target/settle-ui-api/internal/service"
)

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Auth        *AuthComponents
	AuthService *service.AuthService
	Imports     *service.ImportService
	Settlements *service.SettlementService
	Audit       ports.AuditLog
}

// ServiceDeps contains dependencies for NewServices.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB // nil when the audit database is disabled
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires adapters and services from shared infrastructure.
func NewServices(ctx context.Context, deps *ServiceDeps) (*ServiceContainer, error) {
	auth, err := BuildAuth(AuthDeps{
		Auth:        deps.Config.Auth,
		RedisClient: deps.RedisClient,
		Logger:      deps.Logger,
	})
	if err != nil {
		return nil, err
	}

	// Restore a session left behind by a previous process.
	if err := auth.Sessions.Init(ctx); err != nil {
		deps.Logger.WarnContext(ctx, "session restore failed, starting unauthenticated", "error", err)
	}

	client, err := upstream.NewClient(upstream.Config{
		BaseURL: deps.Config.Upstream.BaseURL,
		Timeout: deps.Config.Upstream.Timeout,
		TokenFunc: func(context.Context) string {
			return auth.Sessions.Session().Token
		},
	})
	if err != nil {
		auth.Close()
		return nil, fmt.Errorf("build upstream client: %w", err)
	}

	var audit ports.AuditLog
	if deps.DB != nil {
		repo := data.NewAuditRepo(deps.DB)
		if err := repo.EnsureSchema(ctx); err != nil {
			auth.Close()
			return nil, err
		}
		audit = repo
	}

	return &ServiceContainer{
		Auth: auth,
		AuthService: service.NewAuthService(service.AuthServiceOptions{
			API:      client,
			Sessions: auth.Sessions,
			Audit:    audit,
			Logger:   deps.Logger,
		}),
		Imports: service.NewImportService(service.ImportServiceOptions{
			API:    client,
			Audit:  audit,
			Logger: deps.Logger,
		}),
		Settlements: service.NewSettlementService(service.SettlementServiceOptions{
			API:    client,
			Audit:  audit,
			Logger: deps.Logger,
		}),
		Audit: audit,
	}, nil
}
