// Package observability builds the CLI logger.
package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formwidget/internal/config"
)

// NewLogger creates a console zap.Logger writing to stderr so stdout stays
// reserved for rendered output. Verbose forces the debug level.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if name := strings.TrimSpace(cfg.Level); name != "" {
		if err := level.Set(strings.ToLower(name)); err != nil {
			level = zapcore.WarnLevel
		}
	}
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "message",
			LevelKey:       "level",
			TimeKey:        "ts",
			NameKey:        "logger",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named("formwidget"), nil
}
