package logger

import (
	"os"

	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(levelFromEnv())
	return config.Build()
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}

// NewFxLogger routes the dependency graph events through zap. They are only
// visible at debug level.
func NewFxLogger(logger *zap.Logger) fxevent.Logger {
	l := &fxevent.ZapLogger{Logger: logger}
	l.UseLogLevel(zapcore.DebugLevel)
	return l
}

// LOG_LEVEL is overwritten by the cli --log-level flag
func levelFromEnv() zapcore.Level {
	level := zapcore.InfoLevel
	if value, ok := os.LookupEnv("LOG_LEVEL"); ok && value != "" {
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return zapcore.InfoLevel
		}
	}
	return level
}
