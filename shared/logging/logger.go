package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration for a service
type Config struct {
	ServiceName string
	Env         string
	Level       string
}

// NewLogger builds a JSON logger for deployed environments and a console logger locally
func NewLogger(config Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", config.Level)
	}

	var zapConfig zap.Config
	if config.Env == "" || config.Env == "local" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	return logger.With(zap.String("service_name", config.ServiceName)), nil
}
