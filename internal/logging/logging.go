// Package logging builds the zap loggers used as the diagnostic channel.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	OutputPath string // stdout, stderr, or file path
}

// DefaultConfig is used when a resolver is built without a logger:
// human-readable warnings on stderr.
var DefaultConfig = Config{
	Level:      "warn",
	Format:     "console",
	OutputPath: "stderr",
}

// New builds a logger from cfg. Unknown levels fall back to info.
func New(cfg Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var config zap.Config
	if cfg.Format == "console" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.DisableStacktrace = true
	} else {
		config = zap.NewProductionConfig()
	}

	config.Level = zap.NewAtomicLevelAt(level)
	if cfg.OutputPath != "" {
		config.OutputPaths = []string{cfg.OutputPath}
	}

	return config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// Default returns a logger built from DefaultConfig, or a no-op logger if
// stderr cannot be opened.
func Default() *zap.Logger {
	logger, err := New(DefaultConfig)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Field helpers for common fields.

func Name(val string) zap.Field {
	return zap.String("name", val)
}

func BaseDir(val string) zap.Field {
	return zap.String("base_dir", val)
}

func Err(err error) zap.Field {
	return zap.Error(err)
}
