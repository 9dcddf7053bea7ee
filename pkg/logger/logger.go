// Package logger builds the zap loggers used across the module.
package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-vector/pkg/settings"
)

// New builds a JSON logger from cfg. Output goes to a size-rotated file when
// FileLogName is set and to stderr otherwise. An empty LogLevel means info.
func New(cfg settings.Logger) (*zap.Logger, error) {
	if err := settings.Validate(cfg); err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, errors.Wrapf(err, "parse log level %q", cfg.LogLevel)
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink(cfg), level)
	return zap.New(core, zap.AddCaller()), nil
}

func sink(cfg settings.Logger) zapcore.WriteSyncer {
	if cfg.FileLogName == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})
}
