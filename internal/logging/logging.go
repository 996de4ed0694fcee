// Package logging builds the CLI's zap logger from configuration.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to stderr at level with the given encoding
// ("console" or "json").
func New(level, encoding string) (*zap.Logger, error) {
	lvl, err := parse(level, encoding)
	if err != nil {
		return nil, err
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         strings.ToLower(encoding),
		EncoderConfig:    encoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build()
}

// NewWriter is New for an arbitrary destination.
func NewWriter(w io.Writer, level, encoding string) (*zap.Logger, error) {
	lvl, err := parse(level, encoding)
	if err != nil {
		return nil, err
	}
	var enc zapcore.Encoder
	if strings.EqualFold(encoding, "json") {
		enc = zapcore.NewJSONEncoder(encoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(encoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

func parse(level, encoding string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return lvl, fmt.Errorf("logging: %w", err)
	}
	switch strings.ToLower(encoding) {
	case "console", "json":
		return lvl, nil
	default:
		return lvl, fmt.Errorf("logging: unknown encoding %q", encoding)
	}
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder

	return ec
}
