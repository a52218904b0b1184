package configprovider

import (
	"assetconsole/providers"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL       = "http://localhost:5000/api"
	DefaultSessionKeyPrefix = "assetctl:session"
	DefaultCacheTTL         = 5 * time.Minute
)

type EnvConfigProvider struct {
	apiBaseURL       string
	sessionStore     string
	sessionFile      string
	redisAddr        string
	sessionKeyPrefix string
	cacheTTL         time.Duration
	logLevel         string
	serverPort       string
	jwtSecret        string
	adminEmail       string
	adminPassword    string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.apiBaseURL = strings.TrimRight(envOr("API_URL", DefaultAPIBaseURL), "/")
	e.sessionStore = envOr("SESSION_STORE", "file")
	e.sessionFile = envOr("SESSION_FILE", defaultSessionFile())
	e.redisAddr = envOr("REDIS_ADDR", "localhost:6379")
	e.sessionKeyPrefix = envOr("SESSION_KEY_PREFIX", DefaultSessionKeyPrefix)
	e.logLevel = envOr("LOG_LEVEL", "warn")
	e.serverPort = envOr("SERVER_PORT", "5000")
	e.jwtSecret = os.Getenv("SECRET_KEY")
	e.adminEmail = envOr("ADMIN_EMAIL", "admin@example.com")
	e.adminPassword = envOr("ADMIN_PASSWORD", "admin123")

	e.cacheTTL = DefaultCacheTTL
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Warning: invalid CACHE_TTL %q, using %s", raw, DefaultCacheTTL)
		} else {
			e.cacheTTL = ttl
		}
	}
	return nil
}

func (e *EnvConfigProvider) GetAPIBaseURL() string {
	return e.apiBaseURL
}

func (e *EnvConfigProvider) GetSessionStore() string {
	return e.sessionStore
}

func (e *EnvConfigProvider) GetSessionFile() string {
	return e.sessionFile
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetSessionKeyPrefix() string {
	return e.sessionKeyPrefix
}

func (e *EnvConfigProvider) GetCacheTTL() time.Duration {
	return e.cacheTTL
}

func (e *EnvConfigProvider) GetLogLevel() string {
	return e.logLevel
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetJWTSecret() string {
	return e.jwtSecret
}

func (e *EnvConfigProvider) GetAdminEmail() string {
	return e.adminEmail
}

func (e *EnvConfigProvider) GetAdminPassword() string {
	return e.adminPassword
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".assetctl", "session.json")
	}
	return filepath.Join(home, ".assetctl", "session.json")
}
