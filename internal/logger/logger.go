package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log глобальный логгер. До вызова InitLogger ничего не пишет.
var Log = zap.NewNop()

const prodStage = "prod"

// InitLogger настраивает глобальный логгер: JSON в prod, консольный вывод в остальных окружениях
func InitLogger(level, stage, service string) error {
	var zapConfig zap.Config

	if stage == prodStage {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.InitialFields = map[string]interface{}{
			"service": service,
			"stage":   stage,
		}
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	zapConfig.DisableStacktrace = stage == prodStage

	l, err := zapConfig.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// ParseLevel переводит строку LOG_LEVEL в уровень zap, по умолчанию info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	}
	return zapcore.InfoLevel
}

// With создает дочерний логгер с дополнительными полями
func With(fields ...zapcore.Field) *zap.Logger {
	return Log.With(fields...)
}

// Sync сбрасывает буферы логгера
func Sync() error {
	return Log.Sync()
}
