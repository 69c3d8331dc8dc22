package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until InitLogger runs so
// packages and tests can log without setup.
var Log = zap.NewNop()

func InitLogger(cfg LoggerConfig, appEnv string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if appEnv == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := zcfg.Build()
	if err != nil {
		logger = zap.NewExample()
		logger.Warn("[config.logger] falling back to example logger", zap.Error(err))
	}
	Log = logger
	return logger
}
