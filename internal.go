package tracelog

import (
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

func (s *Service) rollingFileWriter() *lumberjack.Logger {
	name := s.Config.LogFileName
	if name == emptyString {
		name = "app.log"
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(s.Config.LogFileDir, name),
		MaxBackups: s.Config.LogFileMaxBackups,
		MaxAge:     s.Config.LogFileMaxAgeDays,
		MaxSize:    s.Config.LogFileMaxSizeMB,
	}
}
