// Package logger builds the application-wide zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger configured for the given environment.
// Production gets JSON output, everything else a colored console encoder.
func New(env string) (*zap.Logger, error) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}

	return config.Build()
}

// Must is New that panics on error. Intended for main() wiring only.
func Must(env string) *zap.Logger {
	log, err := New(env)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return log
}
