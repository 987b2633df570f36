package tracelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// ServiceConfig configures the zerolog-backed Sink. Level is the backend's
// minimum severity; records below it are dropped by zerolog regardless of
// the operation's declared level.
type ServiceConfig struct {
	Level             string `mapstructure:"Level" validate:"required"`
	WithTimestamp     bool   `mapstructure:"WithTimestamp"`
	WithInstanceID    bool   `mapstructure:"WithInstanceID"`
	ConsoleLogging    bool   `mapstructure:"ConsoleLogging"`
	FileLogging       bool   `mapstructure:"FileLogging"`
	LogFileDir        string `mapstructure:"LogFileDir" validate:"required_if=FileLogging true"`
	LogFileName       string `mapstructure:"LogFileName"`
	LogFileMaxBackups int    `mapstructure:"LogFileMaxBackups" validate:"gte=0"`
	LogFileMaxAgeDays int    `mapstructure:"LogFileMaxAgeDays" validate:"gte=0"`
	LogFileMaxSizeMB  int    `mapstructure:"LogFileMaxSizeMB" validate:"gte=0"`
}

// Service is the concrete Sink over rs/zerolog: console and/or rolling file
// output, atomic logger storage so hooks can be installed concurrently with
// emission. The zero value is inert; call Initialize first.
type Service struct {
	Config *ServiceConfig

	logger      atomic.Pointer[zerolog.Logger]
	initialized atomic.Bool
}

func NewService(cfg *ServiceConfig) *Service {
	return &Service{Config: cfg}
}

// Initialize validates the config and builds the underlying zerolog logger.
func (s *Service) Initialize() error {
	if s == nil {
		return errors.New(errMsgNilService)
	}
	if err := validateConfig(s.Config); err != nil {
		return err
	}

	var writers []io.Writer
	if s.Config.FileLogging {
		if err := os.MkdirAll(s.Config.LogFileDir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
		writers = append(writers, s.rollingFileWriter())
	}
	if s.Config.ConsoleLogging {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if len(writers) == 0 {
		return errors.New(errMsgNoChannels)
	}

	level, err := ParseLevel(s.Config.Level)
	if err != nil {
		return fmt.Errorf("setting logging level: %w", err)
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(ZerologLevel(level))

	if s.Config.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}
	if s.Config.WithInstanceID {
		logger = logger.With().Str("instance_id", uuid.NewString()).Logger()
	}

	s.logger.Store(&logger)
	s.initialized.Store(true)
	return nil
}

// Close releases the service. Safe to call multiple times.
func (s *Service) Close() error {
	// zerolog writers need no explicit teardown; kept for lifecycle symmetry
	return nil
}

// Emit implements Sink. Context fields keep their native zerolog encoding;
// an error payload is enriched with its unwrap chain.
func (s *Service) Emit(loggerName string, level Level, message string, fields []Field, err error) {
	if s == nil || !s.initialized.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}
	zl := ZerologLevel(level)
	if zl == zerolog.Disabled {
		return
	}

	ev := logger.WithLevel(zl)
	if ev == nil {
		return
	}
	ev.Str(fieldLoggerName, loggerName)
	for _, f := range fields {
		appendField(ev, f)
	}
	if err != nil {
		ev.Err(err)
		if chain, root := buildErrorChain(err); len(chain) > 1 {
			ev.Strs("error_chain", chain)
			ev.Str("error_root", root)
			ev.Str("error_history", joinChain(chain))
		}
	}
	ev.Msg(message)
}

func appendField(ev *zerolog.Event, f Field) {
	switch v := f.Value.(type) {
	case string:
		ev.Str(f.Key, v)
	case int:
		ev.Int(f.Key, v)
	case int64:
		ev.Int64(f.Key, v)
	case uint64:
		ev.Uint64(f.Key, v)
	case float64:
		ev.Float64(f.Key, v)
	case bool:
		ev.Bool(f.Key, v)
	case time.Duration:
		ev.Dur(f.Key, v)
	default:
		ev.Interface(f.Key, v)
	}
}

// Hook installs zerolog hooks on the live logger. A compare-and-swap loop
// keeps installation safe against concurrent Emit calls.
func (s *Service) Hook(hooks ...zerolog.Hook) {
	if !s.initialized.Load() {
		return
	}
	for {
		oldLogger := s.logger.Load()
		if oldLogger == nil {
			return
		}
		newLogger := oldLogger.Hook(hooks...)
		if s.logger.CompareAndSwap(oldLogger, &newLogger) {
			break
		}
	}
}
