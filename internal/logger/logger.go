package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// New builds a production zap logger at the given level and installs it as
// the global logger so packages can use zap.L().
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

// Gorm adapts l for gorm's SQL logger. Queries slower than slowThreshold are
// reported as warnings; everything else only at debug level.
func Gorm(l *zap.Logger, slowThreshold time.Duration) gormlogger.Interface {
	level := gormlogger.Warn
	if l.Core().Enabled(zapcore.DebugLevel) {
		level = gormlogger.Info
	}

	writer, err := zap.NewStdLogAt(l.Named("gorm"), zapcore.InfoLevel)
	if err != nil {
		writer = zap.NewStdLog(l.Named("gorm"))
	}

	return gormlogger.New(
		writer,
		gormlogger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  level,
			Colorful:                  false,
			IgnoreRecordNotFoundError: true,
		},
	)
}
