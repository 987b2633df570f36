package tracelog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink adapts a *zap.Logger to the Sink interface, for hosts that
// already carry a zap logger instead of the zerolog Service.
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// ZapLevel maps a Level onto zap's severity scale. LevelNone has no zap
// equivalent; ZapSink drops such records before this mapping applies.
func ZapLevel(l Level) zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarning:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InvalidLevel
	}
}

// Emit implements Sink.
func (z *ZapSink) Emit(loggerName string, level Level, message string, fields []Field, err error) {
	if z == nil || z.logger == nil {
		return
	}
	zl := ZapLevel(level)
	if zl == zapcore.InvalidLevel {
		return
	}
	ce := z.logger.Check(zl, message)
	if ce == nil {
		return
	}

	zfields := make([]zap.Field, 0, len(fields)+2)
	zfields = append(zfields, zap.String(fieldLoggerName, loggerName))
	for _, f := range fields {
		zfields = append(zfields, zap.Any(f.Key, f.Value))
	}
	if err != nil {
		zfields = append(zfields, zap.Error(err))
	}
	ce.Write(zfields...)
}
