package loggerProvider

import (
	"assetconsole/providers"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogProvider struct {
	level  string
	logger *zap.Logger
}

func NewLogProvider(level string) providers.ZapLoggerProvider {
	return &LogProvider{level: level}
}

func (l *LogProvider) InitLogger() {
	cfg := zap.NewDevelopmentConfig()
	if l.level != "" {
		lvl, err := zapcore.ParseLevel(l.level)
		if err != nil {
			log.Printf("Warning: unknown log level %q, using debug", l.level)
		} else {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	var err error
	l.logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	zap.ReplaceGlobals(l.logger)
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

func (l *LogProvider) GetLogger() *zap.Logger {
	if l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}
