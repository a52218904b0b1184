package main

import (
	"assetconsole/providers/configProvider"
	"assetconsole/providers/loggerProvider"
	"assetconsole/server"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	cfg := configprovider.NewConfigProvider()
	_ = cfg.LoadEnv()
	logger := loggerProvider.NewLogProvider(cfg.GetLogLevel())
	logger.InitLogger()
	defer logger.SyncLogger()

	srv, err := server.ServerInit(cfg, logger)
	if err != nil {
		logger.GetLogger().Fatal("failed to initialize server", zap.Error(err))
	}
	go srv.Start()
	srv.Logger.GetLogger().Info("server initialized...")
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done
	srv.Stop()
	srv.Logger.GetLogger().Info("server stopped...")
}
