package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/target/settle-ui-api/config"
	redisadapter "github.com/target/settle-ui-api/internal/adapters/redis"
	"github.com/target/settle-ui-api/internal/service"
)

// AuthComponents bundles the session machinery built from one Redis
// client: the durable credential store, the cross-context logout bus,
// the session manager riding on both, and the route guard.
type AuthComponents struct {
	Store    *redisadapter.CredentialStore
	Bus      *redisadapter.LogoutBus
	Sessions *service.SessionManager
	Guard    *service.Guard
}

// AuthDeps contains dependencies for BuildAuth.
type AuthDeps struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuth wires the credential store, logout bus, session manager,
// and route guard.
func BuildAuth(deps AuthDeps) (*AuthComponents, error) {
	store := redisadapter.NewCredentialStoreWithPrefix(deps.RedisClient, deps.Auth.CredentialPrefix)
	bus := redisadapter.NewLogoutBus(redisadapter.LogoutBusOptions{
		Client:  deps.RedisClient,
		Channel: deps.Auth.LogoutChannel,
		Logger:  deps.Logger,
	})

	sessions, err := service.NewSessionManager(service.SessionManagerOptions{
		Store:     store,
		Bus:       bus,
		RoleClaim: deps.Auth.RoleClaim,
		Logger:    deps.Logger,
	})
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("build session manager: %w", err)
	}

	guard := service.NewGuard(service.GuardOptions{
		LoginPath:   deps.Auth.LoginPath,
		LandingPath: deps.Auth.LandingPath,
	})

	return &AuthComponents{Store: store, Bus: bus, Sessions: sessions, Guard: guard}, nil
}

// Close detaches the session manager and stops the logout bus listener.
func (a *AuthComponents) Close() {
	if a.Sessions != nil {
		a.Sessions.Close()
	}
	if a.Bus != nil {
		a.Bus.Close()
	}
}
