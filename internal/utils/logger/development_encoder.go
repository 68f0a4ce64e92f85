package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewDevelopmentEncoder(level zapcore.Level) zapcore.Core {

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + l.CapitalString() + "]")
	}
	consoleConfig.ConsoleSeparator = " "
	consoleConfig.LevelKey = "level"
	consoleConfig.MessageKey = "message"
	consoleConfig.EncodeName = zapcore.FullNameEncoder
	// Short clock time is enough when tailing a local server.
	consoleConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	return zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.AddSync(os.Stderr), level)
}
