package providers

import (
	"assetconsole/models"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ConfigProvider interface {
	LoadEnv() error
	GetAPIBaseURL() string
	GetSessionStore() string
	GetSessionFile() string
	GetRedisAddr() string
	GetSessionKeyPrefix() string
	GetCacheTTL() time.Duration
	GetLogLevel() string
	GetServerPort() string
	GetJWTSecret() string
	GetAdminEmail() string
	GetAdminPassword() string
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

// CredentialStore holds the session credential. Implementations must read the
// backing storage on every call so a logout elsewhere is seen by the next request.
type CredentialStore interface {
	CurrentToken(ctx context.Context) (string, bool, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetUserAndRoleFromContext(r *http.Request) (string, models.Role, error)
}
