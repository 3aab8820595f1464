package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes how the logger is built
type Config struct {
	Level             string
	Encoding          string
	OutputPath        string
	DisableCaller     bool
	DisableStacktrace bool
}

// New builds a zap logger writing to stderr
func New(level, encoding string) (*zap.Logger, error) {
	return NewWithConfig(Config{Level: level, Encoding: encoding})
}

// NewWithConfig builds a zap logger from cfg.
// An empty OutputPath means stderr.
func NewWithConfig(cfg Config) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoding := cfg.Encoding
	switch encoding {
	case "":
		encoding = "console"
	case "console", "json":
	default:
		return nil, fmt.Errorf("invalid log encoding %q: must be console or json", cfg.Encoding)
	}

	output := cfg.OutputPath
	if output == "" {
		output = "stderr"
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
	}
	return zcfg.Build()
}
