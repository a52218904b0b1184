package server

import (
	"assetconsole/handler"
	"assetconsole/models"
	"assetconsole/providers"
	"assetconsole/providers/middlewareprovider"
	"assetconsole/repository"
	"assetconsole/routes"
	"assetconsole/serviceprovider/auth"
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Server struct {
	Config     providers.ConfigProvider
	Logger     providers.ZapLoggerProvider
	Store      *repository.Store
	Handler    *handler.Handler
	httpServer *http.Server
}

// ServerInit wires the in-memory backend and seeds the admin account.
func ServerInit(cfg providers.ConfigProvider, logger providers.ZapLoggerProvider, opts ...repository.Option) (*Server, error) {
	log := logger.GetLogger()

	secret := cfg.GetJWTSecret()
	if secret == "" {
		secret = uuid.NewString()
		log.Warn("SECRET_KEY not set, tokens are signed with a random key")
	}
	jwt := auth.NewJWTService(secret, auth.DefaultTokenExpiry)
	middleware := middlewareprovider.NewAuthMiddlewareService(jwt)

	store := repository.NewStore(opts...)
	admin, err := store.CreateUser(context.Background(), models.RegisterReq{
		Email:     cfg.GetAdminEmail(),
		Password:  cfg.GetAdminPassword(),
		FirstName: "System",
		LastName:  "Administrator",
	}, models.AdminRole)
	if err != nil {
		return nil, err
	}
	log.Info("admin account seeded", zap.String("email", admin.Email))

	return &Server{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Handler: handler.NewHandler(store, jwt, middleware, log),
	}, nil
}

func (s *Server) Routes() http.Handler {
	return routes.RegisterRoutes(s.Handler)
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	s.Logger.GetLogger().Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer == nil {
		return
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.Logger.GetLogger().Error("error shutting down server", zap.Error(err))
	}
}
