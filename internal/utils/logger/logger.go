package logger

import (
	"sync"
	"testing"

	"github.com/AshkanSharifii/blog/internal/utils/env"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogKeyContext       = "context"
	LogContextMain      = "main"
	LogContextHttp      = "http"
	LogContextSignal    = "signal"
	LogContextStorage   = "storage"
	LogContextMedia     = "media"
	LogContextMonitor   = "monitor"
	LogContextWebSocket = "web-socket"
	LogContextFeed      = "feed"
)

var (
	logOnce        sync.Once
	logger         *zap.Logger
	testingContext bool
)

type LoggerOptions struct {
	WithStructureLogging bool
	WithDefaultLogging   bool
	LogLevel             zapcore.Level
	DefaultFields        []zap.Field
}

type LoggerOptionsFunc func(*LoggerOptions) error

func Log(optFuncs ...LoggerOptionsFunc) *zap.Logger {
	logOnce.Do(func() {
		if testingContext {
			return
		}
		logger = NewLogger(optFuncs...)
	})
	return logger
}

func SetTestLogger(t *testing.T) {
	logger = zaptest.NewLogger(t)
}

func SetupLogsCapture() *observer.ObservedLogs {
	core, logs := observer.New(zap.InfoLevel)
	logger = zap.New(core)
	testingContext = true
	return logs
}

func WithStructuredLogging() LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.WithStructureLogging = true
		return nil
	}
}

func WithDefaultLogging() LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.WithDefaultLogging = true
		return nil
	}
}

func WithDefaultFields(fields []zap.Field) LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.DefaultFields = fields
		return nil
	}
}

func NewLogger(optFuncs ...LoggerOptionsFunc) *zap.Logger {
	var options = &LoggerOptions{}
	var cores []zapcore.Core
	for _, optFunc := range optFuncs {
		if err := optFunc(options); err != nil {
			panic("error instantiating new logger: " + err.Error())
		}
	}

	// env wins over the option default
	var loglevel zapcore.Level
	switch env.CanGet("LOG_LEVEL") {
	case "debug":
		loglevel = zapcore.DebugLevel
	case "warn":
		loglevel = zapcore.WarnLevel
	case "error":
		loglevel = zapcore.ErrorLevel
	case "panic":
		loglevel = zapcore.PanicLevel
	case "fatal":
		loglevel = zapcore.FatalLevel
	default:
		loglevel = zapcore.InfoLevel
	}
	options.LogLevel = loglevel

	if options.WithStructureLogging {
		cores = append(cores, NewProductionEncoder(options.LogLevel))
	}

	if options.WithDefaultLogging {
		cores = append(cores, NewDevelopmentEncoder(options.LogLevel))
	}

	core := zapcore.NewTee(cores...)
	l := zap.New(core)
	if len(options.DefaultFields) > 0 {
		l = l.With(options.DefaultFields...)
	}
	return l
}
