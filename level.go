package tracelog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Level is the severity of a declared operation, ordered from least to most
// severe. The zero value is "unset": an operation whose level was never
// assigned fails compilation rather than silently defaulting. LevelNone is
// an explicit "never emit".
type Level uint8

const (
	levelUnset Level = iota
	LevelNone
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unset"
	}
}

// ParseLevel parses a string log level as used in ServiceConfig.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off", "disabled":
		return LevelNone, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return levelUnset, fmt.Errorf("unknown log level %q", s)
	}
}

// ZerologLevel maps a Level onto zerolog's severity scale. LevelNone (and an
// unset level) map to zerolog.Disabled so the record is never written.
func ZerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
