package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewProductionEncoder(level zapcore.Level) zapcore.Core {

	jsonConfig := zap.NewProductionEncoderConfig()
	jsonConfig.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(l.CapitalString())
	}
	jsonConfig.LevelKey = "level"
	jsonConfig.MessageKey = "message"
	jsonConfig.TimeKey = "timestamp"
	jsonConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonConfig.EncodeDuration = zapcore.MillisDurationEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(jsonConfig), zapcore.AddSync(os.Stderr), level)
}
