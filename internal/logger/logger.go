package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds the global zap logger. Production config for the "production"
// environment, human friendly development config otherwise.
func Init(env string) error {
	var (
		logger *zap.Logger
		err    error
	)

	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err = cfg.Build()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.Build -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
