// Copyright 2025 James Ross
package obs

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON zap logger at the given level, tagged with a
// fresh run id so every log line from one dedup batch can be grepped out
// of a shared log stream.
func NewLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "json"
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}

// Convenience typed fields
func String(k, v string) zap.Field         { return zap.String(k, v) }
func Int(k string, v int) zap.Field        { return zap.Int(k, v) }
func Bool(k string, v bool) zap.Field      { return zap.Bool(k, v) }
func Err(err error) zap.Field              { return zap.Error(err) }
func Duration(k string, d time.Duration) zap.Field { return zap.Duration(k, d) }
