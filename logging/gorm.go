package logging

import (
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// gormWriter adapts zap to gorm's logger.Writer.
type gormWriter struct {
	logger *zap.Logger
}

func (w *gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Sugar().Infof(format, args...)
}

// GormLogger returns a gorm logger that writes through zap at a verbosity
// derived from the application log level.
func GormLogger(level string) gormlogger.Interface {
	var gormLevel gormlogger.LogLevel
	switch strings.ToLower(level) {
	case "debug":
		gormLevel = gormlogger.Info
	case "info", "warn", "warning":
		gormLevel = gormlogger.Warn
	case "error":
		gormLevel = gormlogger.Error
	default:
		gormLevel = gormlogger.Warn
	}

	return gormlogger.New(
		&gormWriter{logger: WithComponent("gorm")},
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
